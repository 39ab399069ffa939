package tipjar

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/types"
	"github/chapool/agent-tipjar/internal/util"
)

func GetCheckBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.API.GET("/check-balance", getCheckBalanceHandler(s))
}

// Balances are read fresh on every call. A failed upstream read is reported
// as "0" and listed in "degraded" instead of failing the request.
func getCheckBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		raw, _, err := parseAddressParam(c, "address")
		if err != nil {
			return err
		}

		snapshot, err := s.Balance.ReadBalances(ctx, raw)
		if err != nil {
			log.Error().Err(err).Str("address", raw).Msg("Failed to check balance")
			return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Failed to check balance", err)
		}

		response := &types.CheckBalanceResponse{
			Address:  swag.String(raw),
			Usdc:     swag.String(snapshot.USDC.Value),
			Eth:      swag.String(snapshot.ETH.Value),
			Network:  swag.String(snapshot.Network),
			Degraded: snapshot.DegradedAssets(),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
