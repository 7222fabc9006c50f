package crypto

import "fmt"

// BuildChallengeMessage reconstructs the exact byte sequence a client is
// expected to sign. The server rebuilds it from its own inputs before
// verification; any whitespace or encoding drift on the client side is a
// verification failure, not a tolerated variance.
func BuildChallengeMessage(wallet, nonce string, timestamp int64) string {
	return fmt.Sprintf(
		"refgate.io wants you to verify wallet ownership:\n%s\n\nNonce: %s\nIssued At: %d",
		wallet, nonce, timestamp,
	)
}
