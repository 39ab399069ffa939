package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// Asset names double as the JSON field names of the balance response.
const (
	AssetUSDC = "usdc"
	AssetETH  = "eth"
)

// FallbackValue is reported for a read that failed.
const FallbackValue = "0"

// Backend is the part of ethclient.Client the reader needs.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Result is the outcome of a single balance read. A failed read carries Err
// and reports FallbackValue, so "RPC down" stays distinguishable from a real
// zero balance.
type Result struct {
	Amount *big.Int
	Value  string
	Err    error
}

func (r Result) Degraded() bool {
	return r.Err != nil
}

// Snapshot is a best-effort view of an address' balances, fetched fresh per call.
type Snapshot struct {
	Address common.Address
	Network string
	USDC    Result
	ETH     Result
}

// DegradedAssets lists the assets whose read failed, in response field order.
func (s *Snapshot) DegradedAssets() []string {
	var assets []string
	if s.USDC.Degraded() {
		assets = append(assets, AssetUSDC)
	}
	if s.ETH.Degraded() {
		assets = append(assets, AssetETH)
	}

	return assets
}

// FailureHook is called once per failed read.
type FailureHook func(asset string, err error)

// Service reads on-chain balances.
type Service interface {
	// ReadBalances validates address and reads the token and native balances
	// concurrently. Read failures are reported per Result, never as error.
	ReadBalances(ctx context.Context, address string) (*Snapshot, error)

	// Ping checks that the RPC endpoint answers and serves the configured chain.
	Ping(ctx context.Context) error

	Close()
}
