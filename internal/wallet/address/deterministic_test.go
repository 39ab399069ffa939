package address_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/wallet/address"
)

func TestDeterministicKnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		privateKey string
		address    string
	}{
		{"claude", "", "0x545ed38f55e9c98bdaa6de74685901fa217d14036ab2d41edad55180c97deb46", "0x11587D50fe524526450503d03E9d6c26F1d36F63"},
		{"claude", "s3cret", "0xf6ed795417e6890cceda3c50fdf049089fc6df883a9534042326c1349ae7df72", "0x610cdd7bBB55207E4e3997283c6f6e89D78e1Fc1"},
		{"my-agent", "", "0x430ad6bd60aff98cf721186635bc21052c04f4795f1afd17c490164101441a17", "0x1De9B5d5AAf8Aa2fC863f847eCF074212c48D341"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.secret, func(t *testing.T) {
			keys, err := address.Deterministic(tt.name, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.address, keys.AddressHex())
			assert.Equal(t, tt.privateKey, keys.PrivateKeyHex())
		})
	}
}

func TestDeterministicIsPure(t *testing.T) {
	a, err := address.Deterministic("some-agent", "pepper")
	require.NoError(t, err)
	b, err := address.Deterministic("some-agent", "pepper")
	require.NoError(t, err)

	assert.Equal(t, a.Address, b.Address)
	assert.Equal(t, a.PrivateKey, b.PrivateKey)
}

func TestDeterministicNormalizesName(t *testing.T) {
	want, err := address.Deterministic("myagent", "")
	require.NoError(t, err)

	for _, name := range []string{"MyAgent ", "  MYAGENT", "\tmyAgent\n"} {
		got, err := address.Deterministic(name, "")
		require.NoError(t, err)
		assert.Equal(t, want.Address, got.Address, name)
	}
}

func TestNormalizeNameTrimSet(t *testing.T) {
	assert.Equal(t, "myagent", address.NormalizeName("\uFEFFMyAgent\u00A0"))
	assert.Equal(t, "myagent", address.NormalizeName("\u2028myagent\u3000"))
	// NEL is not whitespace in browsers and stays part of the name.
	assert.Equal(t, "\u0085myagent", address.NormalizeName("\u0085MyAgent"))
}

func TestDeterministicSecretChangesAddress(t *testing.T) {
	a, err := address.Deterministic("claude", "")
	require.NoError(t, err)
	b, err := address.Deterministic("claude", "other")
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)
}

func TestDeterministicEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\n\t"} {
		_, err := address.Deterministic(name, "secret")
		require.ErrorIs(t, err, address.ErrInvalidInput)
	}
}

func TestKeyMaterialClear(t *testing.T) {
	keys, err := address.Deterministic("claude", "")
	require.NoError(t, err)

	keys.Clear()
	assert.Equal(t, make([]byte, 32), keys.PrivateKey)
}

func TestValidateName(t *testing.T) {
	normalized, err := address.ValidateName("  Claude ")
	require.NoError(t, err)
	assert.Equal(t, "claude", normalized)

	_, err = address.ValidateName("   ")
	require.ErrorIs(t, err, address.ErrInvalidInput)

	_, err = address.ValidateName(" a ")
	require.ErrorIs(t, err, address.ErrNameTooShort)

	_, err = address.ValidateName(strings.Repeat("x", 51))
	require.ErrorIs(t, err, address.ErrNameTooLong)

	normalized, err = address.ValidateName(strings.Repeat("x", 50))
	require.NoError(t, err)
	assert.Len(t, normalized, 50)

	// length is counted in characters, not bytes
	_, err = address.ValidateName(strings.Repeat("ü", 30))
	require.NoError(t, err)
}
