package address

import (
	"github.com/pkg/errors"
	"github/chapool/agent-tipjar/internal/wallet/seed"
)

// Random generates a new key pair from fresh entropy, the way a browser
// wallet creates its first account. Only offline tooling may call this: the
// private key has no other copy and must never leave the local terminal.
func Random() (*RandomKeyMaterial, error) {
	mnemonic, err := seed.NewMnemonic(seed.Entropy128)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mnemonic")
	}

	return FromMnemonic(mnemonic, "", DefaultPath)
}

// FromMnemonic recovers the key pair at path from a BIP39 mnemonic.
func FromMnemonic(mnemonic string, passphrase string, path string) (*RandomKeyMaterial, error) {
	s, err := seed.FromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer seed.Zero(s)

	keys, err := FromSeed(s, path)
	if err != nil {
		return nil, err
	}

	return &RandomKeyMaterial{
		KeyMaterial:    *keys,
		Mnemonic:       mnemonic,
		DerivationPath: path,
	}, nil
}
