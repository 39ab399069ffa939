package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/util"
)

const qrCodeSize = 256

func GetTipQRCodeRoute(s *api.Server) *echo.Route {
	return s.Router.Tip.GET("/:agent/qr.png", getTipQRCodeHandler(s))
}

// The QR code encodes the bare checksummed address, which every wallet app
// can scan.
func getTipQRCodeHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		addr, err := resolveTipAddress(c)
		if err != nil {
			return err
		}

		png, err := qrcode.Encode(addr.Hex(), qrcode.Highest, qrCodeSize)
		if err != nil {
			util.LogFromEchoContext(c).Error().Err(err).Msg("Failed to encode QR code")
			return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Internal server error", err)
		}

		c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
		return c.Blob(http.StatusOK, "image/png", png)
	}
}
