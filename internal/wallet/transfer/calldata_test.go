package transfer_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/wallet/transfer"
)

const recipient = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestBuildTransferCalldataFiveUSDC(t *testing.T) {
	units, err := transfer.ParseAmount("5", 6)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5_000_000), units)

	data := transfer.BuildTransferCalldata(common.HexToAddress(recipient), units)
	require.Len(t, data, 4+32+32)

	assert.Equal(t, "a9059cbb", common.Bytes2Hex(data[:4]))
	assert.Equal(t, "000000000000000000000000f39fd6e51aad88f6f4ce6ab8827279cfffb92266", common.Bytes2Hex(data[4:36]))
	assert.Equal(t, "00000000000000000000000000000000000000000000000000000000004c4b40", common.Bytes2Hex(data[36:]))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 1_000_000},
		{"25", 25_000_000},
		{"0.01", 10_000},
		{"0.1", 100_000},
		{"1.23", 1_230_000},
		{" 10 ", 10_000_000},
		{"0.000001", 1},
		// extra precision is truncated, not rounded
		{"0.0000019", 1},
		{"1.9999999", 1_999_999},
		{"1e2", 100_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := transfer.ParseAmount(tt.in, 6)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.want), got)
		})
	}
}

func TestParseAmountLargeValuesAreExact(t *testing.T) {
	// 0.1 * 1e18 in float64 arithmetic drifts; fixed-point must not.
	got, err := transfer.ParseAmount("123456789012345.123456789012345678", 18)
	require.NoError(t, err)
	want, ok := new(big.Int).SetString("123456789012345123456789012345678", 10)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{
		"", "abc", "0", "0.0", "-1", "-0.5", "NaN", "Inf", "1,5",
		// below the smallest unit
		"0.0000001",
		// out of range or abusive exponents
		"1e100", "1e999999999", "1e-999999999",
		"115792089237316195423570985008687907853269984665640564039457584007913129639936",
	} {
		_, err := transfer.ParseAmount(in, 6)
		require.ErrorIs(t, err, transfer.ErrInvalidAmount, in)
	}
}
