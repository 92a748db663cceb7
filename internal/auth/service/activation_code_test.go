package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamoodahalabed/book-network/pkg/constant"
)

// Codes must be exactly six digits drawn from 1-9; '0' never appears.
func TestGenerateActivationCode_AlphabetAndLength(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateActivationCode(constant.ActivationCodeLength)
		require.NoError(t, err)

		assert.Len(t, code, constant.ActivationCodeLength)
		for _, c := range code {
			assert.Contains(t, constant.ActivationCodeAlphabet, string(c))
		}
		assert.NotContains(t, code, "0")
	}
}

func TestGenerateActivationCode_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateActivationCode(constant.ActivationCodeLength)
		require.NoError(t, err)
		seen[code] = true
	}

	// 100 draws from a 531441-code space should essentially never collide
	// down to a single value.
	assert.Greater(t, len(seen), 1)
}

func TestGenerateActivationCode_CoversAlphabet(t *testing.T) {
	var all strings.Builder
	for i := 0; i < 500; i++ {
		code, err := GenerateActivationCode(constant.ActivationCodeLength)
		require.NoError(t, err)
		all.WriteString(code)
	}

	for _, c := range constant.ActivationCodeAlphabet {
		assert.Contains(t, all.String(), string(c))
	}
}
