package web

import (
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
)

type indexPage struct {
	BaseURL     string
	ChainName   string
	TokenSymbol string
}

func GetIndexRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/", getIndexHandler(s))
}

func getIndexHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, "index.html", indexPage{
			BaseURL:     baseURL(s, c),
			ChainName:   s.Config.Chain.Name,
			TokenSymbol: s.Config.Token.Symbol,
		})
	}
}
