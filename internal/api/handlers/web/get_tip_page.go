package web

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
)

type tipPage struct {
	DisplayName   string
	Address       string
	QRCodeURL     string
	ExplorerURL   string
	ChainName     string
	TokenSymbol   string
	PresetAmounts []string
}

func GetTipPageRoute(s *api.Server) *echo.Route {
	return s.Router.Tip.GET("/:agent", getTipPageHandler(s))
}

func getTipPageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		addr, err := resolveTipAddress(c)
		if err != nil {
			return err
		}

		agent := c.Param("agent")

		page := tipPage{
			DisplayName:   DisplayName(agent),
			Address:       addr.Hex(),
			QRCodeURL:     "/tip/" + url.PathEscape(agent) + "/qr.png?address=" + addr.Hex(),
			ChainName:     s.Config.Chain.Name,
			TokenSymbol:   s.Config.Token.Symbol,
			PresetAmounts: s.Config.TipJar.PresetAmounts,
		}

		if s.Config.Chain.ExplorerURL != "" {
			page.ExplorerURL = s.Config.Chain.ExplorerURL + "/address/" + addr.Hex()
		}

		return render(c, "tip.html", page)
	}
}
