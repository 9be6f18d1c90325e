package loader

import (
	"fmt"
	"os"
	"time"

	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
	"github.com/fabianopinto/dotenvx-go/internal/registry"
	"github.com/fabianopinto/dotenvx-go/internal/rewrite"
)

// Options configures [Load].
type Options struct {
	Overload           bool
	AllowCommands      bool
	CommandTimeout     time.Duration
	PrivateKeyOverride string
	KeysFilePath       string
}

// fileEntries pairs a parsed file with the registry that resolves its own
// declared public key, since each file in a multi-file load may carry a
// different DOTENV_PUBLIC_KEY and a different suffix-derived env var.
type fileEntries struct {
	path string
	file *dotenv.ParsedFile
	reg  *registry.Registry
}

// Load parses every file in paths (in order), decrypts encrypted entries,
// and expands the rest, returning the resulting name-to-value map. Later
// files override earlier ones; within a file, later entries override
// earlier ones of the same key.
func Load(paths []string, opts Options) (map[string]string, error) {
	var files []fileEntries
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		reg, err := registry.Build(path, opts.KeysFilePath, opts.PrivateKeyOverride)
		if err != nil {
			return nil, fmt.Errorf("building key registry for %s: %w", path, err)
		}
		files = append(files, fileEntries{
			path: path,
			file: dotenv.Parse(string(data)),
			reg:  reg,
		})
	}

	resolved := make(map[string]string)
	expandOpts := dotenv.ExpandOptions{
		AllowCommands: opts.AllowCommands,
		Timeout:       opts.CommandTimeout,
	}

	for _, fe := range files {
		publicKeyHex, _ := fe.file.Lookup(rewrite.PublicKeyEntryName)

		for _, e := range fe.file.Entries() {
			if e.Key == rewrite.PublicKeyEntryName {
				continue
			}

			if e.IsEncrypted() {
				plaintext, err := decryptEntry(e.Decoded(), publicKeyHex, fe.reg)
				if err != nil {
					return nil, fmt.Errorf("%s: key %s (line %d): %w", fe.path, e.Key, e.Line, err)
				}
				resolved[e.Key] = plaintext
				continue
			}

			lookup := lookupFunc(resolved)
			resolved[e.Key] = dotenv.ExpandValue(e.Decoded(), lookup, expandOpts)
		}
	}

	if !opts.Overload {
		for key := range resolved {
			if _, present := os.LookupEnv(key); present {
				resolved[key], _ = os.LookupEnv(key)
			}
		}
	}

	return resolved, nil
}

func lookupFunc(resolved map[string]string) dotenv.Lookup {
	return func(name string) (string, bool) {
		if v, ok := resolved[name]; ok {
			return v, true
		}
		return os.LookupEnv(name)
	}
}

func decryptEntry(sealed, publicKeyHex string, reg *registry.Registry) (string, error) {
	privateKeyHex, ok := reg.Lookup(publicKeyHex)
	if !ok {
		return "", &registry.MissingPrivateKey{PublicKeyHex: publicKeyHex}
	}
	privateKey, err := codec.DecodeHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	plaintext, err := crypto.Open(sealed, privateKey)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
