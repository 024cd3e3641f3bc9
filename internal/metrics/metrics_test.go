package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("rapidapi.teams", 10*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("rapidapi.teams", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("rapidapi.teams"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("rapidapi.teams"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("rapidapi.teams")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("rapidapi.players"); other.Calls != 0 {
		t.Fatalf("expected sources to be tracked independently, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("rapidapi.players", 5*time.Second)
	rec.RecordRateLimit("rapidapi.players", 0)

	if got := rec.RateLimitHits("rapidapi.players"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.Snapshot("rapidapi.players").LastRetryAfter; got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderCountsCacheInserts(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheInserts("team", 3)
	rec.RecordCacheInserts("team", 0)
	rec.RecordCacheInserts("team", 2)

	if got := rec.CacheInserts("team"); got != 5 {
		t.Fatalf("expected 5 inserts, got %d", got)
	}
	if got := rec.CacheInserts("player"); got != 0 {
		t.Fatalf("expected no player inserts, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordCacheInserts("team", 1)
	rec.RecordHTTPRequest("GET", "/status", 200, time.Millisecond)
	rec.RecordWarmCycle(time.Millisecond, nil)
	if rec.CacheInserts("team") != 0 || rec.UpstreamCalls("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
