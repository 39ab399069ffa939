package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostCreateWalletPayload post create wallet payload
//
// swagger:model postCreateWalletPayload
type PostCreateWalletPayload struct {

	// Agent name, trimmed and lowercased before use. Required; the length
	// rules are applied after normalization by the handler.
	// Example: my-agent
	AgentName *string `json:"agentName,omitempty"`

	// Optional salt mixed into the derivation seed.
	// Max Length: 256
	Secret string `json:"secret,omitempty"`
}

// Validate validates this post create wallet payload
func (m *PostCreateWalletPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateSecret(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostCreateWalletPayload) validateSecret(_ strfmt.Registry) error {
	if m.Secret == "" {
		return nil
	}

	if err := validate.MaxLength("secret", "body", m.Secret, 256); err != nil {
		return err
	}

	return nil
}

// CreateWalletResponse create wallet response
//
// swagger:model createWalletResponse
type CreateWalletResponse struct {

	// EIP-55 checksummed address of the agent's tip jar.
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Address *string `json:"address"`

	// Normalized agent name.
	// Required: true
	AgentName *string `json:"agentName"`

	// How to obtain the private key offline.
	Note string `json:"note,omitempty"`
}

// Validate validates this create wallet response
func (m *CreateWalletResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAddress(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("agentName", "body", m.AgentName); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *CreateWalletResponse) validateAddress(_ strfmt.Registry) error {
	if err := validate.Required("address", "body", m.Address); err != nil {
		return err
	}

	if err := validate.Pattern("address", "body", *m.Address, `^0x[0-9a-fA-F]{40}$`); err != nil {
		return err
	}

	return nil
}
