package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns 200 when the configured RPC node answers for the expected chain.
// Balance reads degrade to "0" while this probe is failing.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ProbeTimeout)
		defer cancel()

		if err := s.Balance.Ping(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Health probe failed, RPC node unreachable")
			return c.String(521, "Unhealthy.")
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
