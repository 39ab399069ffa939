package tipjar

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/types"
	"github/chapool/agent-tipjar/internal/util"
	"github/chapool/agent-tipjar/internal/wallet/transfer"
)

func GetTransferRequestRoute(s *api.Server) *echo.Route {
	return s.Router.API.GET("/transfer-request", getTransferRequestHandler(s))
}

// Prepares, but never signs or sends, a token transfer to the given
// recipient. The tip page hands the result to the browser's signing agent.
func getTransferRequestHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var params types.GetTransferRequestParams
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			return err
		}

		to, _, err := parseAddressParam(c, "to")
		if err != nil {
			return err
		}

		if strings.TrimSpace(params.Amount) == "" {
			return httperrors.ErrBadRequestAmountRequired
		}

		req, err := transfer.BuildRequest(to, params.Amount, s.Config.Chain, s.Config.Token)
		if err != nil {
			if errors.Is(err, transfer.ErrInvalidAmount) {
				return httperrors.ErrBadRequestInvalidAmount
			}

			log.Error().Err(err).Msg("Failed to build transfer request")
			return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Failed to build transfer request", err)
		}

		s.Metrics.TransferRequests.Inc()

		response := &types.TransferRequestResponse{
			Recipient:   swag.String(req.To.Hex()),
			Amount:      swag.String(req.Amount),
			AmountUnits: swag.String(req.AmountUnits.String()),
			Token:       req.TokenSymbol,
			Transaction: &types.TransactionParams{
				To:    swag.String(req.Token.Hex()),
				Data:  swag.String(hexutil.Encode(req.Calldata)),
				Value: "0x0",
			},
			Chain: &types.AddChainParams{
				ChainID:   swag.String(req.Chain.ChainIDHex),
				ChainName: req.Chain.ChainName,
				NativeCurrency: types.NativeCurrency{
					Name:     req.Chain.NativeName,
					Symbol:   req.Chain.NativeSymbol,
					Decimals: req.Chain.NativeDecimals,
				},
				RPCUrls:           req.Chain.RPCURLs,
				BlockExplorerUrls: req.Chain.BlockExplorerURLs,
			},
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
