package crypto

import (
	"errors"
	"fmt"
)

// ErrDecryptionFailed is returned when AES-GCM authentication fails, whether
// because the key is wrong or the envelope was tampered with.
var ErrDecryptionFailed = errors.New("decryption failed")

// ErrRngFailure is returned when the system random source cannot be read.
var ErrRngFailure = errors.New("random number generation failed")

// InvalidPrivateKeyReason enumerates why a private key was rejected.
type InvalidPrivateKeyReason string

const (
	// ReasonPrivateKeyWrongSize is returned when the key is not 32 bytes.
	ReasonPrivateKeyWrongSize InvalidPrivateKeyReason = "wrong size"
	// ReasonPrivateKeyOutOfRange is returned when the scalar is zero or ≥ the curve order.
	ReasonPrivateKeyOutOfRange InvalidPrivateKeyReason = "out of range"
)

// InvalidPrivateKey is returned when a private key fails validation.
type InvalidPrivateKey struct {
	Reason InvalidPrivateKeyReason
}

func (e *InvalidPrivateKey) Error() string {
	return fmt.Sprintf("invalid private key: %s", e.Reason)
}

// InvalidPublicKeyReason enumerates why a public key was rejected.
type InvalidPublicKeyReason string

const (
	// ReasonPublicKeyWrongSize is returned when the key is not 33 bytes.
	ReasonPublicKeyWrongSize InvalidPublicKeyReason = "wrong size"
	// ReasonPublicKeyBadPrefix is returned when the leading byte is neither 0x02 nor 0x03.
	ReasonPublicKeyBadPrefix InvalidPublicKeyReason = "bad prefix"
	// ReasonPublicKeyNotOnCurve is returned when the point does not satisfy the curve equation.
	ReasonPublicKeyNotOnCurve InvalidPublicKeyReason = "not on curve"
)

// InvalidPublicKey is returned when a public key fails validation.
type InvalidPublicKey struct {
	Reason InvalidPublicKeyReason
}

func (e *InvalidPublicKey) Error() string {
	return fmt.Sprintf("invalid public key: %s", e.Reason)
}

// InvalidEnvelopeReason enumerates why an envelope could not be opened.
type InvalidEnvelopeReason string

const (
	// ReasonEnvelopeTooShort is returned when the decoded envelope is under [EnvelopeMinSize].
	ReasonEnvelopeTooShort InvalidEnvelopeReason = "too short"
	// ReasonEnvelopeBadBase64 is returned when the base64 payload does not decode.
	ReasonEnvelopeBadBase64 InvalidEnvelopeReason = "bad base64"
	// ReasonEnvelopeBadPoint is returned when the embedded ephemeral key is not a valid point.
	ReasonEnvelopeBadPoint InvalidEnvelopeReason = "bad point"
	// ReasonEnvelopeMissingPrefix is returned when the value lacks the "encrypted:" prefix.
	ReasonEnvelopeMissingPrefix InvalidEnvelopeReason = "missing prefix"
)

// InvalidEnvelope is returned when an "encrypted:" value is malformed.
type InvalidEnvelope struct {
	Reason InvalidEnvelopeReason
}

func (e *InvalidEnvelope) Error() string {
	return fmt.Sprintf("invalid envelope: %s", e.Reason)
}
