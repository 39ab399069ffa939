package transfer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Request is everything an injected signing agent needs to send a tip: the
// network to switch to (or add) and the eth_sendTransaction parameters. The
// service never signs or broadcasts; the sender's address is supplied by the
// signing agent.
type Request struct {
	To          common.Address
	Token       common.Address
	TokenSymbol string
	Amount      string
	AmountUnits *big.Int
	Calldata    []byte
	Chain       ChainParams
}

// ChainParams are the wallet_switchEthereumChain / wallet_addEthereumChain
// parameters (EIP-3085) for the target network.
type ChainParams struct {
	ChainIDHex        string
	ChainName         string
	NativeName        string
	NativeSymbol      string
	NativeDecimals    int32
	RPCURLs           []string
	BlockExplorerURLs []string
}
