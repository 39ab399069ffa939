package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// CheckBalanceResponse check balance response
//
// swagger:model checkBalanceResponse
type CheckBalanceResponse struct {

	// Address as supplied by the caller.
	// Required: true
	Address *string `json:"address"`

	// Token balance in whole units.
	// Required: true
	Usdc *string `json:"usdc"`

	// Native balance in whole units.
	// Required: true
	Eth *string `json:"eth"`

	// Network name.
	// Required: true
	Network *string `json:"network"`

	// Assets whose read failed and are reported as "0".
	Degraded []string `json:"degraded,omitempty"`
}

// Validate validates this check balance response
func (m *CheckBalanceResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validateDecimalString("usdc", m.Usdc); err != nil {
		res = append(res, err)
	}

	if err := validateDecimalString("eth", m.Eth); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("network", "body", m.Network); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func validateDecimalString(name string, v *string) error {
	if err := validate.Required(name, "body", v); err != nil {
		return err
	}

	if err := validate.Pattern(name, "body", *v, `^[0-9]+(\.[0-9]+)?$`); err != nil {
		return err
	}

	return nil
}
