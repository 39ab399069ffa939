package seed

import "github.com/pkg/errors"

const (
	// Entropy128 yields a 12 word mnemonic, the default of most browser wallets.
	Entropy128 = 128
	// Entropy256 yields a 24 word mnemonic.
	Entropy256 = 256
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")
