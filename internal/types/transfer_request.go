package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// GetTransferRequestParams query parameters of GET /api/transfer-request
type GetTransferRequestParams struct {

	// Recipient address.
	To string `query:"to"`

	// Decimal token amount, e.g. "5" or "0.25".
	Amount string `query:"amount"`
}

// Validate is a no-op; recipient and amount carry domain specific error
// messages and are checked by the handler.
func (m *GetTransferRequestParams) Validate(_ strfmt.Registry) error {
	return nil
}

// TransactionParams eth_sendTransaction parameters, minus "from".
//
// swagger:model transactionParams
type TransactionParams struct {

	// Token contract.
	// Required: true
	To *string `json:"to"`

	// ABI encoded transfer(address,uint256) call.
	// Required: true
	Data *string `json:"data"`

	// Always 0x0 for token transfers.
	Value string `json:"value"`
}

// NativeCurrency EIP-3085 native currency
//
// swagger:model nativeCurrency
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// AddChainParams wallet_addEthereumChain parameters
//
// swagger:model addChainParams
type AddChainParams struct {

	// Required: true
	ChainID *string `json:"chainId"`

	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCUrls           []string       `json:"rpcUrls,omitempty"`
	BlockExplorerUrls []string       `json:"blockExplorerUrls,omitempty"`
}

// TransferRequestResponse transfer request response
//
// swagger:model transferRequestResponse
type TransferRequestResponse struct {

	// Recipient address.
	// Required: true
	Recipient *string `json:"recipient"`

	// Normalized decimal amount.
	// Required: true
	Amount *string `json:"amount"`

	// Amount in the token's smallest unit.
	// Required: true
	AmountUnits *string `json:"amountUnits"`

	// Token symbol.
	Token string `json:"token"`

	// Required: true
	Transaction *TransactionParams `json:"transaction"`

	// Required: true
	Chain *AddChainParams `json:"chain"`
}

// Validate validates this transfer request response
func (m *TransferRequestResponse) Validate(_ strfmt.Registry) error {
	var res []error

	for name, v := range map[string]*string{
		"recipient":   m.Recipient,
		"amount":      m.Amount,
		"amountUnits": m.AmountUnits,
	} {
		if err := validate.Required(name, "body", v); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("transaction", "body", m.Transaction); err != nil {
		res = append(res, err)
	} else {
		if err := validate.Required("transaction.to", "body", m.Transaction.To); err != nil {
			res = append(res, err)
		}
		if err := validate.Required("transaction.data", "body", m.Transaction.Data); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("chain", "body", m.Chain); err != nil {
		res = append(res, err)
	} else if err := validate.Required("chain.chainId", "body", m.Chain.ChainID); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
