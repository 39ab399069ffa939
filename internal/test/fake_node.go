package test

import (
	"bytes"
	"context"
	"math/big"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

var (
	balanceOfMethodID = common.Hex2Bytes("70a08231")

	ErrFakeNodeUnavailable = errors.New("fake node: upstream unavailable")
)

// FakeNode is an in-process JSON-RPC endpoint answering the handful of eth_*
// methods the tip jar uses. Balances default to zero; reads can be made to
// fail or stall to exercise degraded responses.
type FakeNode struct {
	URL string

	server *httptest.Server
	rpc    *rpc.Server

	mu            sync.Mutex
	chainID       *big.Int
	token         common.Address
	tokenBalances map[common.Address]*big.Int
	balances      map[common.Address]*big.Int
	failToken     bool
	failNative    bool
	delay         time.Duration
}

// NewFakeNode starts a fake node serving chainID with token as the ERC-20
// contract. It is stopped when the test completes.
func NewFakeNode(t *testing.T, chainID int64, token string) *FakeNode {
	t.Helper()

	node := &FakeNode{
		chainID:       big.NewInt(chainID),
		token:         common.HexToAddress(token),
		tokenBalances: make(map[common.Address]*big.Int),
		balances:      make(map[common.Address]*big.Int),
	}

	node.rpc = rpc.NewServer()
	if err := node.rpc.RegisterName("eth", &fakeEthAPI{node: node}); err != nil {
		t.Fatalf("Failed to register fake eth API: %v", err)
	}

	node.server = httptest.NewServer(node.rpc)
	node.URL = node.server.URL

	t.Cleanup(node.Close)

	return node
}

func (n *FakeNode) Close() {
	n.server.Close()
	n.rpc.Stop()
}

func (n *FakeNode) SetTokenBalance(account common.Address, amount *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tokenBalances[account] = new(big.Int).Set(amount)
}

func (n *FakeNode) SetBalance(account common.Address, amount *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.balances[account] = new(big.Int).Set(amount)
}

func (n *FakeNode) SetChainID(chainID int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chainID = big.NewInt(chainID)
}

// FailTokenReads makes every eth_call return an error.
func (n *FakeNode) FailTokenReads(fail bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failToken = fail
}

// FailNativeReads makes every eth_getBalance return an error.
func (n *FakeNode) FailNativeReads(fail bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failNative = fail
}

// SetDelay stalls every balance read by d, or until the caller gives up.
func (n *FakeNode) SetDelay(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delay = d
}

func (n *FakeNode) wait(ctx context.Context) error {
	n.mu.Lock()
	d := n.delay
	n.mu.Unlock()

	if d == 0 {
		return nil
	}

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type callArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Input *hexutil.Bytes  `json:"input"`
	Data  *hexutil.Bytes  `json:"data"`
}

func (a callArgs) data() []byte {
	if a.Input != nil {
		return *a.Input
	}
	if a.Data != nil {
		return *a.Data
	}

	return nil
}

// fakeEthAPI's exported methods are served as eth_call, eth_getBalance and eth_chainId.
type fakeEthAPI struct {
	node *FakeNode
}

func (api *fakeEthAPI) Call(ctx context.Context, args callArgs, _ string) (hexutil.Bytes, error) {
	if err := api.node.wait(ctx); err != nil {
		return nil, err
	}

	api.node.mu.Lock()
	defer api.node.mu.Unlock()

	if api.node.failToken {
		return nil, ErrFakeNodeUnavailable
	}

	// calls to anything but the token contract behave like calls to an account without code
	if args.To == nil || *args.To != api.node.token {
		return hexutil.Bytes{}, nil
	}

	input := args.data()
	if len(input) != 4+32 || !bytes.Equal(input[:4], balanceOfMethodID) {
		return nil, errors.New("execution reverted")
	}

	account := common.BytesToAddress(input[4:])
	amount, ok := api.node.tokenBalances[account]
	if !ok {
		amount = new(big.Int)
	}

	return common.LeftPadBytes(amount.Bytes(), 32), nil
}

func (api *fakeEthAPI) GetBalance(ctx context.Context, account common.Address, _ string) (*hexutil.Big, error) {
	if err := api.node.wait(ctx); err != nil {
		return nil, err
	}

	api.node.mu.Lock()
	defer api.node.mu.Unlock()

	if api.node.failNative {
		return nil, ErrFakeNodeUnavailable
	}

	amount, ok := api.node.balances[account]
	if !ok {
		amount = new(big.Int)
	}

	return (*hexutil.Big)(new(big.Int).Set(amount)), nil
}

func (api *fakeEthAPI) ChainId() *hexutil.Big { //nolint:revive,stylecheck // mirrors the eth_chainId method name
	api.node.mu.Lock()
	defer api.node.mu.Unlock()

	return (*hexutil.Big)(new(big.Int).Set(api.node.chainID))
}
