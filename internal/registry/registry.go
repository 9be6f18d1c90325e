// Package registry resolves the private key that matches a dotenv file's
// DOTENV_PUBLIC_KEY entry, from a sibling .env.keys file, environment
// variables, and an explicitly supplied override — in that precedence
// order, so an explicit key always wins and an environment variable beats
// whatever is recorded on disk.
package registry

import (
	"os"
	"strings"

	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
)

// Registry maps a public key (lowercase hex) to its matching private key
// (lowercase hex).
type Registry struct {
	byPublicKey map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byPublicKey: make(map[string]string)}
}

// Add records privateKeyHex under its derived public key. A second call for
// the same public key replaces the first, matching the key-registry
// invariant in the data model.
func (r *Registry) Add(privateKeyHex string) bool {
	priv, err := codec.DecodeHex(privateKeyHex)
	if err != nil {
		return false
	}
	pub, err := crypto.DerivePublicKey(priv)
	if err != nil {
		return false
	}
	r.byPublicKey[codec.EncodeHex(pub)] = strings.ToLower(privateKeyHex)
	return true
}

// Lookup returns the private key hex registered for publicKeyHex, if any.
func (r *Registry) Lookup(publicKeyHex string) (string, bool) {
	v, ok := r.byPublicKey[strings.ToLower(publicKeyHex)]
	return v, ok
}

// Len reports how many distinct public keys are registered.
func (r *Registry) Len() int {
	return len(r.byPublicKey)
}

// Build assembles a registry for envPath from, in increasing precedence: a
// sibling .env.keys file (or keysFileOverride if non-empty), the
// DOTENV_PRIVATE_KEY / DOTENV_PRIVATE_KEY_<SUFFIX> environment variables,
// and an explicit private key override.
func Build(envPath, keysFileOverride, explicitPrivateKeyHex string) (*Registry, error) {
	r := New()

	keysPath := keysFileOverride
	if keysPath == "" {
		keysPath = KeysFilePath(envPath)
	}
	if data, err := os.ReadFile(keysPath); err == nil {
		loadKeysFile(r, string(data))
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("DOTENV_PRIVATE_KEY"); v != "" {
		r.Add(v)
	}
	if suffix := Suffix(envPath); suffix != "" {
		if v := os.Getenv(VariableName(envPath)); v != "" {
			r.Add(v)
		}
	}

	if explicitPrivateKeyHex != "" {
		r.Add(explicitPrivateKeyHex)
	}

	return r, nil
}

// loadKeysFile adds every DOTENV_PRIVATE_KEY / DOTENV_PRIVATE_KEY_<SUFFIX>
// entry found in an .env.keys file's contents to the registry. Entries that
// fail to decode are skipped rather than aborting the whole load: a single
// stale or hand-edited line in a keys file serving many environments should
// not make every other environment unloadable.
func loadKeysFile(r *Registry, contents string) {
	f := dotenv.Parse(contents)
	for _, e := range f.Entries() {
		if e.Key == "DOTENV_PRIVATE_KEY" || strings.HasPrefix(e.Key, "DOTENV_PRIVATE_KEY_") {
			r.Add(e.Decoded())
		}
	}
}
