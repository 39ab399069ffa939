//nolint:ireturn // Returning interface is intentional for dependency injection
package balance

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/util"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"golang.org/x/sync/errgroup"
)

var balanceOfMethodID = common.Hex2Bytes("70a08231")

const defaultRPCTimeout = 5 * time.Second

type service struct {
	backend        Backend
	closeFn        func()
	token          common.Address
	tokenDecimals  int32
	nativeDecimals int32
	chainID        int64
	network        string
	timeout        time.Duration
	onFailure      FailureHook
}

type Option func(*service)

// WithFailureHook registers a callback for failed reads, e.g. a metrics counter.
func WithFailureHook(hook FailureHook) Option {
	return func(s *service) {
		s.onFailure = hook
	}
}

// NewService creates a balance reader on top of an existing backend.
func NewService(backend Backend, chainCfg config.Chain, tokenCfg config.Token, opts ...Option) (Service, error) {
	if backend == nil {
		return nil, errors.New("balance backend is required")
	}

	token, err := address.Parse(tokenCfg.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid token address %q", tokenCfg.Address)
	}

	timeout := chainCfg.RPCTimeout
	if timeout <= 0 {
		timeout = defaultRPCTimeout
	}

	s := &service{
		backend:        backend,
		token:          token,
		tokenDecimals:  tokenCfg.Decimals,
		nativeDecimals: chainCfg.NativeDecimals,
		chainID:        chainCfg.ChainID,
		network:        chainCfg.Network,
		timeout:        timeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Dial connects to the configured RPC endpoint. For HTTP endpoints no request
// is made until the first read.
func Dial(ctx context.Context, chainCfg config.Chain, tokenCfg config.Token, opts ...Option) (Service, error) {
	if chainCfg.RPCURL == "" {
		return nil, errors.New("RPC URL is required")
	}

	client, err := ethclient.DialContext(ctx, chainCfg.RPCURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial RPC endpoint")
	}

	svc, err := NewService(client, chainCfg, tokenCfg, opts...)
	if err != nil {
		client.Close()
		return nil, err
	}

	//nolint:forcetypeassert // NewService always returns *service
	svc.(*service).closeFn = client.Close

	return svc, nil
}

func (s *service) ReadBalances(ctx context.Context, addr string) (*Snapshot, error) {
	account, err := address.Parse(addr)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Address: account,
		Network: s.network,
	}

	// Both reads always return nil; failures are recorded in their Result.
	var g errgroup.Group
	g.Go(func() error {
		snapshot.USDC = s.read(ctx, AssetUSDC, s.tokenDecimals, func(ctx context.Context) (*big.Int, error) {
			return s.tokenBalance(ctx, account)
		})
		return nil
	})
	g.Go(func() error {
		snapshot.ETH = s.read(ctx, AssetETH, s.nativeDecimals, func(ctx context.Context) (*big.Int, error) {
			return s.backend.BalanceAt(ctx, account, nil)
		})
		return nil
	})
	_ = g.Wait()

	return snapshot, nil
}

func (s *service) read(ctx context.Context, asset string, decimals int32, fn func(context.Context) (*big.Int, error)) Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	amount, err := fn(ctx)
	if err == nil && amount == nil {
		err = errors.New("empty balance response")
	}

	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("asset", asset).Msg("Balance read failed, reporting fallback value")
		if s.onFailure != nil {
			s.onFailure(asset, err)
		}

		return Result{
			Amount: new(big.Int),
			Value:  FallbackValue,
			Err:    errors.Wrapf(err, "failed to read %s balance", asset),
		}
	}

	return Result{
		Amount: amount,
		Value:  FormatUnits(amount, decimals),
	}
}

// tokenBalance calls balanceOf(account) on the configured ERC20 contract.
func (s *service) tokenBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	const abiPaddedAddressLength = 32
	data := make([]byte, 0, len(balanceOfMethodID)+abiPaddedAddressLength)
	data = append(data, balanceOfMethodID...)
	data = append(data, common.LeftPadBytes(account.Bytes(), abiPaddedAddressLength)...)

	callMsg := ethereum.CallMsg{
		To:   &s.token,
		Data: data,
	}

	resp, err := s.backend.CallContract(ctx, callMsg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call balanceOf")
	}

	// An account without code answers eth_call with an empty result.
	if len(resp) != abiPaddedAddressLength {
		return nil, errors.Errorf("unexpected balanceOf response length %d", len(resp))
	}

	return new(big.Int).SetBytes(resp), nil
}

func (s *service) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get chain ID")
	}

	if s.chainID != 0 && chainID.Cmp(big.NewInt(s.chainID)) != 0 {
		return errors.Errorf("RPC endpoint serves chain %s, expected %d", chainID, s.chainID)
	}

	return nil
}

func (s *service) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// FormatUnits renders an integer amount of smallest units as a decimal
// string of whole units, e.g. 1500000 with 6 decimals is "1.5".
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return FallbackValue
	}

	return decimal.NewFromBigInt(amount, -decimals).String()
}
