package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Parse accepts a 40 hex digit address with optional 0x prefix. All-lowercase
// and all-uppercase input is accepted as is; mixed case must match the EIP-55
// checksum.
func Parse(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress
	}

	addr := common.HexToAddress(s)

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) {
		if digits != strings.TrimPrefix(addr.Hex(), "0x") {
			return common.Address{}, ErrInvalidAddress
		}
	}

	return addr, nil
}

// IsValid reports whether Parse would accept s.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
