package transfer

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// transfer(address,uint256)
var transferMethodID = common.Hex2Bytes("a9059cbb")

const (
	abiWordLength = 32
	// maxExponent bounds the decimal exponent accepted by ParseAmount so that
	// inputs like "1e999999999" cannot force huge big.Int allocations.
	maxExponent = 80
)

// ParseAmount converts a human entered decimal token amount into the token's
// smallest unit using fixed-point arithmetic, truncating extra precision:
// "5" with 6 decimals is 5000000, "0.0000019" is 1.
// Non-positive, non-numeric, sub-unit and out of uint256 range amounts yield ErrInvalidAmount.
func ParseAmount(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, ErrInvalidAmount
	}

	if d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return nil, ErrInvalidAmount
	}

	if !d.IsPositive() {
		return nil, ErrInvalidAmount
	}

	units := d.Shift(decimals).Floor().BigInt()
	if units.Sign() <= 0 || units.Cmp(math.MaxBig256) > 0 {
		return nil, ErrInvalidAmount
	}

	return units, nil
}

// BuildTransferCalldata encodes transfer(to, amount):
//
//	a9059cbb ‖ leftpad32(to) ‖ leftpad32(amount)
func BuildTransferCalldata(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, len(transferMethodID)+2*abiWordLength)
	data = append(data, transferMethodID...)
	data = append(data, common.LeftPadBytes(to.Bytes(), abiWordLength)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), abiWordLength)...)

	return data
}
