package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

var randomRead = rand.Read

// GenerateRandomToken generates a random token of specified byte length
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateNonceToken generates a 64-character challenge nonce token
func GenerateNonceToken() (string, error) {
	return GenerateRandomToken(32) // 32 bytes = 64 hex characters
}
