package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/hamoodahalabed/book-network/pkg/constant"
)

// GenerateActivationCode draws length digits uniformly from the activation
// alphabet using a cryptographically secure source.
func GenerateActivationCode(length int) (string, error) {
	const characters = constant.ActivationCodeAlphabet

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(characters))))
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		code[i] = characters[n.Int64()]
	}

	return string(code), nil
}
