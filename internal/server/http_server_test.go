package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerServesOnCustomListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerStopsOnShutdown(t *testing.T) {
	s := newNetHTTPServer("0", http.NewServeMux())
	s.srv.Addr = "127.0.0.1:0"
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNewNetHTTPServerAppliesTimeouts(t *testing.T) {
	handler := http.NewServeMux()
	s := newNetHTTPServer("1234", handler)

	if s.Addr() != ":1234" {
		t.Fatalf("expected addr :1234, got %s", s.Addr())
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	if s.srv.ReadTimeout != readTimeout || s.srv.WriteTimeout != writeTimeout || s.srv.IdleTimeout != idleTimeout {
		t.Fatalf("unexpected timeouts %+v", s.srv)
	}
}
