package server

import (
	"context"

	"github.com/rs/zerolog/log"
	"github/chapool/agent-tipjar/internal/api"
)

// checkChain verifies at startup that the RPC endpoint serves the configured
// chain. A failure is only logged: balance reads degrade to "0" until the
// node becomes reachable, and everything else works without it.
func checkChain(ctx context.Context, s *api.Server) {
	ctx, cancel := context.WithTimeout(ctx, s.Config.Management.ProbeTimeout)
	defer cancel()

	if err := s.Balance.Ping(ctx); err != nil {
		log.Warn().
			Err(err).
			Str("rpc_url", s.Config.Chain.RPCURL).
			Int64("chain_id", s.Config.Chain.ChainID).
			Msg("RPC endpoint check failed, balance reads will be degraded")
		return
	}

	log.Info().
		Str("network", s.Config.Chain.Network).
		Int64("chain_id", s.Config.Chain.ChainID).
		Msg("RPC endpoint check succeeded")
}
