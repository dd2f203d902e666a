package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/core"
)

const testPort = "8099"

// TestEnv is a fully wired service stack talking to a mock upstream
type TestEnv struct {
	Registry      *core.Registry
	Upstream      *MockUpstream
	Context       context.Context
	CancelFunc    context.CancelFunc
	ServerBaseURL string
}

func testConfig(t *testing.T, upstreamURL string) *config.Config {
	return &config.Config{
		Port:      testPort,
		Coingecko: config.CoingeckoConfig{BaseURL: upstreamURL, RequestTimeout: 2 * time.Second, MaxRetries: 1},
		Coincap:   config.CoincapConfig{BaseURL: upstreamURL, RequestTimeout: 2 * time.Second, MaxRetries: 1, WindowSize: 100},
		Gateway: config.GatewayConfig{
			RequestDelay: time.Millisecond,
			PrimaryTTL:   5 * time.Minute,
			FallbackTTL:  time.Minute,
		},
		Dashboard: config.DashboardConfig{
			RefreshInterval: time.Hour,
			// A page size distinct from the HTTP defaults keeps the
			// dashboard's warm-up fetch on its own cache entry
			PerPage:       7,
			WatchlistFile: filepath.Join(t.TempDir(), "watchlist.json"),
		},
	}
}

// SetupTest starts the whole service stack against a mock upstream
func SetupTest(t *testing.T) *TestEnv {
	ctx, cancel := context.WithCancel(context.Background())

	upstream := NewMockUpstream()
	cfg := testConfig(t, upstream.URL())

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		upstream.Close()
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		upstream.Close()
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	env := &TestEnv{
		Registry:      registry,
		Upstream:      upstream,
		Context:       ctx,
		CancelFunc:    cancel,
		ServerBaseURL: fmt.Sprintf("http://localhost:%s", testPort),
	}

	env.waitForServer(t)
	return env
}

// waitForServer polls /health until the HTTP server accepts requests
func (env *TestEnv) waitForServer(t *testing.T) {
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(env.ServerBaseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(25 * time.Millisecond)
	}

	env.TearDown()
	t.Fatal("Server did not become ready")
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.Upstream != nil {
		env.Upstream.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
}
