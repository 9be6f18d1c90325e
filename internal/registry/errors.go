package registry

import "fmt"

// MissingPrivateKey is returned when no private key in the registry matches
// the public key a file (or an explicit recipient) was encrypted against.
type MissingPrivateKey struct {
	PublicKeyHex string
}

func (e *MissingPrivateKey) Error() string {
	if e.PublicKeyHex == "" {
		return "no private key registered: file declares no DOTENV_PUBLIC_KEY"
	}
	return fmt.Sprintf("no private key registered for public key %s", e.PublicKeyHex)
}
