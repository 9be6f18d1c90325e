package dotenvx

import (
	"errors"
	"testing"

	"github.com/fabianopinto/dotenvx-go/internal/crypto"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrRngFailure", ErrRngFailure},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestMissingPrivateKey_Error(t *testing.T) {
	err := &MissingPrivateKey{PublicKeyHex: "02abcd"}
	want := "no private key registered for public key 02abcd"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIoError_Unwrap(t *testing.T) {
	underlying := errors.New("permission denied")
	err := &IoError{Path: ".env", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should match underlying error")
	}
	want := ".env: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandTimeout_Error(t *testing.T) {
	err := &CommandTimeout{Command: "sleep 10"}
	want := "command timed out: sleep 10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandFailed_Unwrap(t *testing.T) {
	underlying := errors.New("exit status 1")
	err := &CommandFailed{Command: "false", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should match underlying error")
	}
}

func TestInvalidPrivateKey_IsInternalType(t *testing.T) {
	var err error = &InvalidPrivateKey{Reason: crypto.ReasonPrivateKeyWrongSize}
	var target *crypto.InvalidPrivateKey
	if !errors.As(err, &target) {
		t.Error("public InvalidPrivateKey alias should be errors.As-compatible with internal/crypto.InvalidPrivateKey")
	}
}
