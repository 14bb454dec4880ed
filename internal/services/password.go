package services

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// DefaultPasswordLength is the length of every generated account password.
const DefaultPasswordLength = 10

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// PasswordGenerator produces random alphanumeric passwords.
// Each character is drawn uniformly from [A-Za-z0-9].
type PasswordGenerator struct {
	length int
	source io.Reader
}

func NewPasswordGenerator(length int) *PasswordGenerator {
	return &PasswordGenerator{length: length, source: rand.Reader}
}

// Generate returns a new password. It panics if the system's secure
// random source fails.
func (g *PasswordGenerator) Generate() string {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(g.source, limit)
		if err != nil {
			panic(fmt.Sprintf("password generator: read random source: %v", err))
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}
