package address_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"github/chapool/agent-tipjar/internal/wallet/seed"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestFromMnemonicKnownAccounts(t *testing.T) {
	keys, err := address.FromMnemonic(testMnemonic, "", address.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", keys.AddressHex())
	assert.Equal(t, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", keys.PrivateKeyHex())
	assert.Equal(t, address.DefaultPath, keys.DerivationPath)

	second, err := address.FromMnemonic(testMnemonic, "", "m/44'/60'/0'/0/1")
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", second.AddressHex())
}

func TestFromMnemonicInvalid(t *testing.T) {
	_, err := address.FromMnemonic("not a mnemonic", "", address.DefaultPath)
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)

	for _, path := range []string{"44'/60'/0'/0/0", "m/44'//0", "m/x", "m/4294967296"} {
		_, err = address.FromMnemonic(testMnemonic, "", path)
		require.Error(t, err, path)
	}
}

func TestRandom(t *testing.T) {
	a, err := address.Random()
	require.NoError(t, err)
	b, err := address.Random()
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)
	assert.Len(t, strings.Fields(a.Mnemonic), 12)
	assert.Len(t, a.PrivateKey, 32)

	// the mnemonic recovers the same account
	recovered, err := address.FromMnemonic(a.Mnemonic, "", address.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, a.Address, recovered.Address)
}
