package api

import (
	"context"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/metrics"
	"github/chapool/agent-tipjar/internal/wallet/balance"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewBalance dials the configured RPC endpoint and counts failed reads in metrics.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewBalance(cfg config.Server, m *metrics.Service) (BalanceService, error) {
	return balance.Dial(context.Background(), cfg.Chain, cfg.Token, balance.WithFailureHook(m.ObserveReadFailure))
}

// NewClock returns the real clock, or a mock clock frozen at time.Now() when
// called from a test.
//
//nolint:ireturn // time2.Clock is an interface by design
func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if !useMock {
		clock = time2.DefaultClock
	} else {
		mockClock := time2.NewMockClock(time.Now())
		clock = mockClock
	}

	return clock
}
