package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var TimeNow = time.Now

var ErrMissingField error = errors.New("missing required field")
var ErrInvalidAddress error = errors.New("invalid ethereum address format")
var ErrMessageMismatch error = errors.New("message does not match expected challenge")
var ErrChallengeExpired error = errors.New("authentication challenge expired")
var ErrInvalidSignature error = errors.New("invalid signature")
var ErrAddressMismatch error = errors.New("recovered address does not match claimed address")

// FreshnessWindow bounds how long a signed challenge stays acceptable. A
// captured signature is replayable at most for this long.
const FreshnessWindow = 5 * time.Minute

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// Challenge is a signature login request as received from the client.
// Timestamp is unix milliseconds, as produced by the signing client.
type Challenge struct {
	Address   string
	Message   string
	Signature string
	Timestamp int64
}

// ChallengeMessage builds the exact text the wallet is asked to sign. The
// template embeds the claimed address and timestamp, binding the resulting
// signature to that pair.
func ChallengeMessage(address string, timestamp int64) string {
	return fmt.Sprintf("TransactRead Authentication\n\nAccount: %s\nTimestamp: %d\n\nClick \"Sign\" to authenticate with TransactRead.",
		address, timestamp)
}

// ValidateChallenge runs the full challenge validation chain and returns the
// lowercased signer address as the canonical identity. Each check fails with
// its own sentinel so callers can map rejections to responses. Pure aside
// from the TimeNow clock; the caller owns user upsert and token issuance.
func ValidateChallenge(c Challenge) (string, error) {
	if c.Address == "" || c.Message == "" || c.Signature == "" || c.Timestamp == 0 {
		return "", ErrMissingField
	}

	if !addressPattern.MatchString(c.Address) {
		return "", ErrInvalidAddress
	}

	// The expected message is rebuilt from the claimed address and timestamp,
	// so a signature for one address cannot be replayed under another.
	expected := ChallengeMessage(c.Address, c.Timestamp)
	if c.Message != expected {
		return "", ErrMessageMismatch
	}

	issued := time.UnixMilli(c.Timestamp)
	if TimeNow().Sub(issued) > FreshnessWindow {
		return "", ErrChallengeExpired
	}

	sig, err := DecodeSignature(c.Signature)
	if err != nil {
		return "", err
	}

	recovered, err := RecoverSigner(c.Message, sig)
	if err != nil {
		return "", err
	}

	claimed := strings.ToLower(c.Address)
	if strings.ToLower(recovered.Hex()) != claimed {
		return "", ErrAddressMismatch
	}

	return claimed, nil
}
