package dotenvx

import (
	"fmt"
	"strings"

	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
)

// Encrypt seals plaintext for the holder of recipientPublicKeyHex, returning
// the on-disk "encrypted:"+base64(envelope) form.
func Encrypt(plaintext, recipientPublicKeyHex string) (string, error) {
	recipient, err := codec.DecodeHex(recipientPublicKeyHex)
	if err != nil {
		return "", err
	}
	return crypto.Seal([]byte(plaintext), recipient)
}

// Decrypt opens a value previously produced by [Encrypt], using a raw
// 32-byte private key's hex encoding.
func Decrypt(value, privateKeyHex string) (string, error) {
	priv, err := codec.DecodeHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	plaintext, err := crypto.Open(value, priv)
	if err != nil {
		return "", fmt.Errorf("decrypting value: %w", err)
	}
	return string(plaintext), nil
}

// isEncryptedValue reports whether v carries the "encrypted:" prefix.
func isEncryptedValue(v string) bool {
	return strings.HasPrefix(v, crypto.EncryptedPrefix)
}
