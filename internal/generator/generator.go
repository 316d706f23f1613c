// Package generator produces random passwords using crypto/rand.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// password character classes
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Alphabet is every character a generated password may contain.
	Alphabet = lowerChars + upperChars + digitChars + symbolChars

	// DefaultLength is the length used when none is configured.
	DefaultLength = 12
)

// ErrInvalidLength is returned for a non-positive password length.
var ErrInvalidLength = errors.New("invalid password length")

// Generator produces random passwords. It holds no state and is safe for
// concurrent use.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Password returns length characters, each drawn independently and
// uniformly from Alphabet.
func (g *Generator) Password(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = pickByte(Alphabet)
	}
	return string(buf), nil
}

// pickByte returns a random byte from a string.
func pickByte(s string) byte {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
