package testkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// Suite manages the lifecycle of test infrastructure (the rates upstream).
type Suite struct {
	mu       sync.Mutex
	cfg      Config
	upstream *UpstreamModule
	ready    bool
}

var (
	globalSuite *Suite
	globalOnce  sync.Once
)

// Global returns the singleton Suite instance.
func Global() *Suite {
	globalOnce.Do(func() {
		globalSuite = &Suite{cfg: LoadConfig()}
	})
	return globalSuite
}

// Setup starts the upstream (or uses the external override).
// Returns an error if called twice without Shutdown in between.
func (s *Suite) Setup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return fmt.Errorf("suite already set up; call Shutdown first")
	}

	up, err := StartUpstream(ctx, &s.cfg)
	if err != nil {
		return fmt.Errorf("setup upstream: %w", err)
	}
	s.upstream = up
	s.ready = true
	return nil
}

// Shutdown stops the stub unless KEEP_UPSTREAM is set.
func (s *Suite) Shutdown(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	if s.cfg.KeepUpstream {
		fmt.Println("KEEP_UPSTREAM=true, leaving upstream running at", s.upstream.URL())
		s.ready = false
		return
	}

	s.upstream.Terminate()
	s.ready = false
}

// Upstream returns the running upstream module.
func (s *Suite) Upstream() *UpstreamModule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upstream
}

// Config returns the suite configuration.
func (s *Suite) Config() Config {
	return s.cfg
}

// Run sets up the suite, calls optional afterSetup callbacks, executes tests,
// then shuts down. Intended for use in TestMain.
func (s *Suite) Run(m *testing.M, afterSetup ...func() error) {
	ctx := context.Background()

	if err := s.Setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration test setup failed: %v\n", err)
		os.Exit(1)
	}

	for _, fn := range afterSetup {
		if err := fn(); err != nil {
			fmt.Fprintf(os.Stderr, "afterSetup callback failed: %v\n", err)
			s.Shutdown(ctx)
			os.Exit(1)
		}
	}

	code := m.Run()

	s.Shutdown(ctx)
	os.Exit(code)
}

// Run is a package-level convenience that delegates to Global().Run.
// For a custom Suite instance, call the method directly: suite.Run(m, ...).
func Run(m *testing.M, afterSetup ...func() error) {
	Global().Run(m, afterSetup...)
}
