package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/util"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html static/*.js
var assets embed.FS

var templates = template.Must(template.ParseFS(assets, "templates/*.html"))

// DisplayName turns a URL slug into a page title: "my-agent" becomes "My Agent".
// Letters after the first of each word keep their case.
func DisplayName(agent string) string {
	name := strings.TrimSpace(strings.ReplaceAll(agent, "-", " "))
	if name == "" {
		return "Agent"
	}

	return cases.Title(language.Und, cases.NoLower).String(name)
}

// baseURL is the externally visible origin used in generated links.
func baseURL(s *api.Server, c echo.Context) string {
	if s.Config.TipJar.PublicURL != "" {
		return strings.TrimSuffix(s.Config.TipJar.PublicURL, "/")
	}

	return c.Scheme() + "://" + c.Request().Host
}

// resolveTipAddress returns the address of a tip page: the "address" query
// parameter when present, otherwise the deterministic wallet of the agent
// derived without a secret.
func resolveTipAddress(c echo.Context) (common.Address, error) {
	if raw := strings.TrimSpace(c.QueryParam("address")); raw != "" {
		addr, err := address.Parse(raw)
		if err != nil {
			return common.Address{}, httperrors.ErrBadRequestInvalidAddress
		}

		return addr, nil
	}

	name, err := address.ValidateName(c.Param("agent"))
	if err != nil {
		return common.Address{}, httperrors.NewHTTPErrorWithInternal(http.StatusBadRequest, "Invalid agent name", err)
	}

	keys, err := address.Deterministic(name, "")
	if err != nil {
		return common.Address{}, err
	}
	defer keys.Clear()

	return keys.Address, nil
}

func render(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		util.LogFromEchoContext(c).Error().Err(err).Str("template", name).Msg("Failed to render template")
		return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, "Internal server error", err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
