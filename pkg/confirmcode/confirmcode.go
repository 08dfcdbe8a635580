package confirmcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Alphabet is the fixed set of characters a code is drawn from
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the length of issued confirmation codes
const DefaultLength = 6

// ErrInvalidLength is returned for a non-positive length
var ErrInvalidLength = errors.New("confirmcode: length must be positive")

// Generator issues random client-facing confirmation codes
type Generator struct {
	length int
}

// NewGenerator creates a generator for codes of the given length
func NewGenerator(length int) (*Generator, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return &Generator{length: length}, nil
}

// Generate returns a new code drawn uniformly from Alphabet
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, g.length)
	max := big.NewInt(int64(len(Alphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("confirmcode: read random: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}

	return string(buf), nil
}

// IsValid reports whether code has the expected length and alphabet
func (g *Generator) IsValid(code string) bool {
	if len(code) != g.length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isAlphabetChar(code[i]) {
			return false
		}
	}
	return true
}

func isAlphabetChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
