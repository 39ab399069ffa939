package transfer

import (
	"strconv"

	"github.com/pkg/errors"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"github/chapool/agent-tipjar/internal/wallet/balance"
)

// BuildRequest validates the recipient and amount and prepares the transfer
// for the signing agent. Retrying a failed send is left to the user; this
// package keeps no record of built requests.
func BuildRequest(to string, amount string, chainCfg config.Chain, tokenCfg config.Token) (*Request, error) {
	recipient, err := address.Parse(to)
	if err != nil {
		return nil, err
	}

	token, err := address.Parse(tokenCfg.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid token address %q", tokenCfg.Address)
	}

	units, err := ParseAmount(amount, tokenCfg.Decimals)
	if err != nil {
		return nil, err
	}

	return &Request{
		To:          recipient,
		Token:       token,
		TokenSymbol: tokenCfg.Symbol,
		Amount:      balance.FormatUnits(units, tokenCfg.Decimals),
		AmountUnits: units,
		Calldata:    BuildTransferCalldata(recipient, units),
		Chain:       NewChainParams(chainCfg),
	}, nil
}

func NewChainParams(chainCfg config.Chain) ChainParams {
	params := ChainParams{
		ChainIDHex:     "0x" + strconv.FormatInt(chainCfg.ChainID, 16),
		ChainName:      chainCfg.Name,
		NativeName:     chainCfg.NativeName,
		NativeSymbol:   chainCfg.NativeSymbol,
		NativeDecimals: chainCfg.NativeDecimals,
	}

	if chainCfg.PublicRPCURL != "" {
		params.RPCURLs = []string{chainCfg.PublicRPCURL}
	}
	if chainCfg.ExplorerURL != "" {
		params.BlockExplorerURLs = []string{chainCfg.ExplorerURL}
	}

	return params
}
