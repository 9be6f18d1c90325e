package dotenvx

import (
	"fmt"

	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
	"github.com/fabianopinto/dotenvx-go/internal/registry"
)

// These re-export the internal taxonomies so callers never need to import
// internal packages directly to use errors.As against them.
type (
	// InvalidEncoding is returned when hex or base64 decoding rejects malformed input.
	InvalidEncoding = codec.InvalidEncoding
	// InvalidPrivateKey is returned when a private key fails validation.
	InvalidPrivateKey = crypto.InvalidPrivateKey
	// InvalidPublicKey is returned when a public key fails validation.
	InvalidPublicKey = crypto.InvalidPublicKey
	// InvalidEnvelope is returned when an "encrypted:" value is malformed.
	InvalidEnvelope = crypto.InvalidEnvelope
	// ParseError describes one recoverable defect found while parsing a dotenv file.
	ParseError = dotenv.ParseError
	// MissingPrivateKey is returned when a load or decrypt meets an
	// "encrypted:" value but no key in the registry matches the file's
	// declared public key.
	MissingPrivateKey = registry.MissingPrivateKey
)

// ErrDecryptionFailed is returned when AES-GCM authentication fails during decrypt.
var ErrDecryptionFailed = crypto.ErrDecryptionFailed

// ErrRngFailure is returned when the system random source cannot be read.
var ErrRngFailure = crypto.ErrRngFailure

// IoError wraps a filesystem failure encountered while reading or writing a
// dotenv or keys file.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// CommandTimeout describes a $(...) substitution that did not complete within
// its configured timeout. No function in this module returns it: a timed-out
// substitution yields the empty string, and the expander records it only as
// a dotenv.CommandDiagnostic.
type CommandTimeout struct {
	Command string
}

func (e *CommandTimeout) Error() string {
	return fmt.Sprintf("command timed out: %s", e.Command)
}

// CommandFailed describes a $(...) substitution that exited non-zero. No
// function in this module returns or records it: a failed substitution
// yields the empty string, and the expander records it only as a
// dotenv.CommandDiagnostic carrying the underlying exec error.
type CommandFailed struct {
	Command string
	Err     error
}

func (e *CommandFailed) Error() string {
	return fmt.Sprintf("command failed: %s: %s", e.Command, e.Err)
}

func (e *CommandFailed) Unwrap() error {
	return e.Err
}
