package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nba-recipes-service/internal/poller"
)

// StubPoller stands in for the cache warmer.
type StubPoller struct {
	Err       error
	StatusVal poller.Status

	mu         sync.Mutex
	startCalls int
	stopCalls  int
}

func (p *StubPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startCalls++
}

func (p *StubPoller) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

// Calls returns how often Start and Stop ran.
func (p *StubPoller) Calls() (start, stop int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.startCalls, p.stopCalls
}

// StubHTTPServer records lifecycle calls. ListenErr defaults to http.ErrServerClosed.
// A non-nil Unblock makes Shutdown wait for it or for the context.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Unblock     chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	if s.ListenErr == nil {
		return http.ErrServerClosed
	}
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Unblock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Unblock:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// Calls returns how often ListenAndServe and Shutdown ran.
func (s *StubHTTPServer) Calls() (listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls, s.shutdownCalls
}

// ErrListen is a ready-made listen failure for StubHTTPServer.ListenErr.
var ErrListen = errors.New("listen failure")
