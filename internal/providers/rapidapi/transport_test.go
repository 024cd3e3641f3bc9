package rapidapi

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientTimeouts(t *testing.T) {
	client, ok := resolveHTTPClient(nil, 0).(*http.Client)
	if !ok || client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout client, got %#v", client)
	}

	client, _ = resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}

	custom := &http.Client{Timeout: 5 * time.Second}
	if resolveHTTPClient(custom, time.Second) != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := map[string]time.Duration{
		"":        0,
		"12":      12 * time.Second,
		" 3 ":     3 * time.Second,
		"-1":      0,
		"Wed, 21": 0,
	}
	for in, want := range cases {
		if got := parseRetryAfter(in); got != want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", in, got, want)
		}
	}
}
