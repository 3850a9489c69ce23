package testkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"ratesservice/internal/provider"
)

// ChargePerGuest is the stub's nightly charge per guest, in cents.
const ChargePerGuest = 12500

// UpstreamModule is a stand-in for the rates provider.
// It quotes ChargePerGuest cents per guest and can be switched into an outage.
type UpstreamModule struct {
	server *httptest.Server
	url    string

	down  atomic.Bool
	calls atomic.Int64

	mu   sync.Mutex
	last *provider.UpstreamRequest
}

// StartUpstream starts the stub, or points at cfg.UpstreamURL when set.
func StartUpstream(ctx context.Context, cfg *Config) (*UpstreamModule, error) {
	if cfg.UpstreamURL != "" {
		m := &UpstreamModule{url: cfg.UpstreamURL}
		return m, m.waitReady(ctx, cfg.StartupTimeout)
	}

	m := &UpstreamModule{}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	m.url = m.server.URL
	return m, m.waitReady(ctx, cfg.StartupTimeout)
}

func (m *UpstreamModule) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		w.WriteHeader(http.StatusOK)
		return
	}
	m.calls.Add(1)
	if m.down.Load() {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
		return
	}

	var req provider.UpstreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.mu.Lock()
	m.last = &req
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		provider.FieldTotalCharge: ChargePerGuest * len(req.Guests),
		provider.FieldRooms:       1,
		provider.FieldLegs:        []any{},
		"Location ID":             req.UnitTypeID,
	})
}

func (m *UpstreamModule) waitReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("upstream %s not reachable: %w", m.url, err)
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// URL returns the upstream endpoint.
func (m *UpstreamModule) URL() string { return m.url }

// Stubbed reports whether the module runs the in-process stub.
func (m *UpstreamModule) Stubbed() bool { return m.server != nil }

// SetDown toggles the simulated outage.
func (m *UpstreamModule) SetDown(down bool) { m.down.Store(down) }

// Calls returns the number of rate requests received.
func (m *UpstreamModule) Calls() int64 { return m.calls.Load() }

// LastRequest returns the most recent decoded rate request, or nil.
func (m *UpstreamModule) LastRequest() *provider.UpstreamRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Reset clears recorded calls and any simulated outage.
func (m *UpstreamModule) Reset() {
	m.down.Store(false)
	m.calls.Store(0)
	m.mu.Lock()
	m.last = nil
	m.mu.Unlock()
}

// Terminate stops the stub server.
func (m *UpstreamModule) Terminate() {
	if m.server != nil {
		m.server.Close()
	}
}
