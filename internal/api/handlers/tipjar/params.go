package tipjar

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/wallet/address"
)

// parseAddressParam reads and validates an address query parameter.
// It returns the trimmed input alongside the parsed address.
func parseAddressParam(c echo.Context, name string) (string, common.Address, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return "", common.Address{}, httperrors.ErrBadRequestAddressRequired
	}

	addr, err := address.Parse(raw)
	if err != nil {
		return "", common.Address{}, httperrors.ErrBadRequestInvalidAddress
	}

	return raw, addr, nil
}
