package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
)

func GetEmbedScriptRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/embed.js", getEmbedScriptHandler(s))
}

func getEmbedScriptHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		script, err := assets.ReadFile("static/embed.js")
		if err != nil {
			return err
		}

		c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
		return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", script)
	}
}
