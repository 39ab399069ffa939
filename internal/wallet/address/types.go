package address

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const (
	// MinNameLength and MaxNameLength bound a normalized agent name, in characters.
	MinNameLength = 2
	MaxNameLength = 50

	// DefaultPath is the BIP44 path browser wallets use for their first account.
	DefaultPath = "m/44'/60'/0'/0/0"
)

var (
	ErrInvalidInput   = errors.New("agent name is required")
	ErrNameTooShort   = errors.New("agent name must be at least 2 characters")
	ErrNameTooLong    = errors.New("agent name must be less than 50 characters")
	ErrInvalidAddress = errors.New("invalid address format")
)

// KeyMaterial is an EVM key pair. It must never be serialized into an API response.
type KeyMaterial struct {
	Address    common.Address
	PrivateKey []byte
}

// AddressHex returns the EIP-55 checksummed address.
func (k *KeyMaterial) AddressHex() string {
	return k.Address.Hex()
}

// PrivateKeyHex returns the 0x-prefixed 32 byte private key.
func (k *KeyMaterial) PrivateKeyHex() string {
	return hexutil.Encode(k.PrivateKey)
}

// Clear zeroes the private key in place.
func (k *KeyMaterial) Clear() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
}

// RandomKeyMaterial is a freshly generated key pair together with its
// recovery phrase and the path it was derived at.
type RandomKeyMaterial struct {
	KeyMaterial
	Mnemonic       string
	DerivationPath string
}
