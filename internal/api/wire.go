//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewBalance,
	NewClock,
)

// InitNewServer returns a new Server instance.
// Passing a *testing.T swaps the clock for a mock clock.
func InitNewServer(
	_ config.Server,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
