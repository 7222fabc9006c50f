package crypto

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// VerifyPersonalSignature checks that signatureHex is a valid EIP-191
// personal_sign signature over message by the key behind address.
// Fails closed: malformed hex, a bad recovery id, or an invalid address
// all return false, never an error.
func VerifyPersonalSignature(message, signatureHex, address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}

	sig, err := hexutil.Decode(signatureHex)
	if err != nil || len(sig) != 65 {
		return false
	}

	// Wallets commonly emit V as 27/28, SigToPub wants 0/1.
	v := make([]byte, len(sig))
	copy(v, sig)
	if v[64] >= 27 {
		v[64] -= 27
	}
	if v[64] > 1 {
		return false
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := ethcrypto.SigToPub(hash, v)
	if err != nil {
		return false
	}

	recovered := ethcrypto.PubkeyToAddress(*pub)
	return strings.EqualFold(recovered.Hex(), address)
}

// NormalizeAddress lowercases a hex wallet address for storage keys.
// Returns false when the input is not a valid hex address.
func NormalizeAddress(address string) (string, bool) {
	if !common.IsHexAddress(address) {
		return "", false
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), true
}
