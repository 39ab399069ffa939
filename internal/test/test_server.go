package test

import (
	"context"
	"testing"
	"time"

	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/router"
	"github/chapool/agent-tipjar/internal/config"
)

// WithTestServer returns a fully configured server backed by a FakeNode.
// The server is shut down after the closure returns.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerAndNode(t, func(s *api.Server, _ *FakeNode) {
		t.Helper()
		closure(s)
	})
}

// WithTestServerAndNode is WithTestServer, additionally handing out the
// FakeNode the server reads balances from.
func WithTestServerAndNode(t *testing.T, closure func(s *api.Server, node *FakeNode)) {
	t.Helper()

	cfg := DefaultTestConfig(t)
	node := NewFakeNode(t, cfg.Chain.ChainID, cfg.Token.Address)
	cfg.Chain.RPCURL = node.URL

	WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		t.Helper()
		closure(s, node)
	})
}

// WithTestServerConfigurable returns a server built from config. Chain.RPCURL
// must point at a reachable node for balance reads to succeed.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)

	closure(s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(config, t)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	return s
}

// DefaultTestConfig is the environment config with settings that keep tests
// fast and independent of the machine they run on.
func DefaultTestConfig(t *testing.T) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.RateLimit = 0
	cfg.Logger.PrettyPrintConsole = false
	cfg.Chain.RPCTimeout = 2 * time.Second
	cfg.Management.ProbeTimeout = 2 * time.Second
	cfg.TipJar.PublicURL = ""

	return cfg
}
