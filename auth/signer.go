// Package auth computes the authentication signature carried in the RawData
// field of a Logon and every subsequent application message.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tradewire/go-fix/fix"
)

var (
	// ErrMissingContext indicates that a required signing input is absent.
	// The error message names the missing input.
	ErrMissingContext = errors.New("missing signing input")

	// ErrInvalidSecret indicates that the credential secret is not valid
	// base64.
	ErrInvalidSecret = errors.New("secret is not valid base64")
)

// Credentials holds the API credentials of one session. They are immutable
// for the session lifetime.
type Credentials struct {
	// Key is the API key, used as SenderCompID and as a signing input.
	Key string
	// Passphrase is the API passphrase, sent as the Logon Password field and
	// used as a signing input.
	Passphrase string
	// Secret is the base64-encoded signing key.
	Secret string
}

// SigningContext carries the per-message inputs of the signature.
type SigningContext struct {
	SendingTime  string
	MsgType      string
	MsgSeqNum    uint64
	TargetCompID string
}

// Sign computes the base64-encoded HMAC-SHA256 signature over the prehash
// string built by joining SendingTime, MsgType, MsgSeqNum, the API key,
// TargetCompID and the passphrase with the SOH delimiter as separator (no
// trailing delimiter). The MAC key is the base64-decoded secret.
//
// Sign is deterministic: identical inputs always produce identical output.
// It fails with an error wrapping ErrMissingContext if any input is absent;
// a sequence number of zero counts as absent because the engine assigns
// sequence numbers starting at one.
func Sign(creds Credentials, sctx SigningContext) (string, error) {
	switch {
	case sctx.SendingTime == "":
		return "", fmt.Errorf("%w: SendingTime", ErrMissingContext)
	case sctx.MsgType == "":
		return "", fmt.Errorf("%w: MsgType", ErrMissingContext)
	case sctx.MsgSeqNum == 0:
		return "", fmt.Errorf("%w: MsgSeqNum", ErrMissingContext)
	case creds.Key == "":
		return "", fmt.Errorf("%w: credentials key", ErrMissingContext)
	case sctx.TargetCompID == "":
		return "", fmt.Errorf("%w: TargetCompID", ErrMissingContext)
	case creds.Passphrase == "":
		return "", fmt.Errorf("%w: credentials passphrase", ErrMissingContext)
	}

	key, err := base64.StdEncoding.DecodeString(creds.Secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}

	prehash := strings.Join([]string{
		sctx.SendingTime,
		sctx.MsgType,
		strconv.FormatUint(sctx.MsgSeqNum, 10),
		creds.Key,
		sctx.TargetCompID,
		creds.Passphrase,
	}, fix.SOH)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(prehash))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
