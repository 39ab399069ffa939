package address

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const seedPrefix = "agent-tipjar:"

// NormalizeName trims surrounding whitespace and lowercases an agent name.
// The trimmed set is the one browsers trim from form input: U+FEFF counts as
// whitespace, U+0085 does not.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimFunc(name, isNameSpace))
}

func isNameSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}

	return unicode.IsSpace(r)
}

// ValidateName normalizes name and checks its length. It returns the
// normalized name on success.
func ValidateName(name string) (string, error) {
	normalized := NormalizeName(name)

	switch n := utf8.RuneCountInString(normalized); {
	case n == 0:
		return "", ErrInvalidInput
	case n < MinNameLength:
		return "", ErrNameTooShort
	case n > MaxNameLength:
		return "", ErrNameTooLong
	}

	return normalized, nil
}

// Deterministic derives the tip jar key pair of an agent:
//
//	privateKey = keccak256("agent-tipjar:" + NormalizeName(name) + ":" + secret)
//
// The same (name, secret) always yields the same key pair, so a tip page can
// be rebuilt from its URL slug alone.
func Deterministic(name string, secret string) (*KeyMaterial, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, ErrInvalidInput
	}

	hash := crypto.Keccak256([]byte(seedPrefix + normalized + ":" + secret))
	defer func() {
		for i := range hash {
			hash[i] = 0
		}
	}()

	keys, err := FromPrivateKey(hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive deterministic key")
	}

	return keys, nil
}
