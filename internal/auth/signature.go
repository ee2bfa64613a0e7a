package auth

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const signatureLength = 65

// RecoverSigner recovers the address that produced signature over message
// using the EIP-191 personal-message scheme:
// keccak256("\x19Ethereum Signed Message:\n" + len(message) + message).
// Signatures with a V byte of 27/28 (wallet convention) are normalized to 0/1
// before recovery.
func RecoverSigner(message string, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrInvalidSignature, signatureLength, len(signature))
	}

	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] != 0 && sig[64] != 1 {
		return common.Address{}, fmt.Errorf("%w: invalid recovery id %d", ErrInvalidSignature, sig[64])
	}

	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	hash := crypto.Keccak256([]byte(prefixed))

	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// DecodeSignature decodes a 0x-prefixed hex signature as produced by
// personal_sign providers.
func DecodeSignature(signature string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex: %s", ErrInvalidSignature, err)
	}
	return raw, nil
}
