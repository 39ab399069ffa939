package tipjar

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/types"
	"github/chapool/agent-tipjar/internal/util"
	"github/chapool/agent-tipjar/internal/wallet/address"
)

func PostCreateWalletRoute(s *api.Server) *echo.Route {
	return s.Router.API.POST("/create-wallet", postCreateWalletHandler(s))
}

// The private key is derived, used for the address and wiped. It is only
// ever printed by the offline CLI named in the note.
func postCreateWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateWalletPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		name, err := address.ValidateName(swag.StringValue(body.AgentName))
		if err != nil {
			return agentNameError(err)
		}

		keys, err := address.Deterministic(name, body.Secret)
		if err != nil {
			log.Error().Err(err).Msg("Failed to derive wallet")
			return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Failed to create wallet", err)
		}
		defer keys.Clear()

		s.Metrics.WalletsDerived.Inc()
		log.Debug().Str("agent", name).Str("address", keys.AddressHex()).Msg("Derived agent wallet")

		response := &types.CreateWalletResponse{
			Address:   swag.String(keys.AddressHex()),
			AgentName: swag.String(name),
			Note:      fmt.Sprintf("To access the private key, run: %s --name %q", s.Config.TipJar.CLIName, name),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

func agentNameError(err error) error {
	switch {
	case errors.Is(err, address.ErrNameTooShort):
		return httperrors.ErrBadRequestAgentNameTooShort
	case errors.Is(err, address.ErrNameTooLong):
		return httperrors.ErrBadRequestAgentNameTooLong
	default:
		return httperrors.ErrBadRequestAgentNameRequired
	}
}
