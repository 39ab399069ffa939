package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/handlers/common"
	"github/chapool/agent-tipjar/internal/api/handlers/tipjar"
	"github/chapool/agent-tipjar/internal/api/handlers/web"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		tipjar.GetCheckBalanceRoute(s),
		tipjar.GetTransferRequestRoute(s),
		tipjar.PostCreateWalletRoute(s),
		web.GetEmbedScriptRoute(s),
		web.GetIndexRoute(s),
		web.GetTipPageRoute(s),
		web.GetTipQRCodeRoute(s),
	}
}
