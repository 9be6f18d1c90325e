package dotenvx

import (
	"fmt"

	"github.com/fabianopinto/dotenvx-go/internal/loader"
	"github.com/fabianopinto/dotenvx-go/internal/rewrite"
)

// Load parses, decrypts, and expands one or more dotenv files into a single
// name-to-value map.
func Load(paths []string, opts ...LoadOption) (map[string]string, error) {
	cfg := newLoadConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return loader.Load(paths, loader.Options{
		Overload:           cfg.overload,
		AllowCommands:      cfg.allowCommands,
		CommandTimeout:     cfg.commandTimeout,
		PrivateKeyOverride: cfg.privateKeyOverride,
		KeysFilePath:       cfg.keysFilePath,
	})
}

// Get loads paths and returns the value bound to key. The second return
// value reports whether key was present.
func Get(paths []string, key string, opts ...LoadOption) (string, bool, error) {
	env, err := Load(paths, opts...)
	if err != nil {
		return "", false, err
	}
	v, ok := env[key]
	return v, ok, nil
}

// GetAll loads paths and returns the full resulting environment map.
func GetAll(paths []string, opts ...LoadOption) (map[string]string, error) {
	return Load(paths, opts...)
}

// Set inserts or replaces a single entry in a dotenv file, encrypting the
// value against the file's public key unless [WithPlain] is supplied.
func Set(path, key, value string, opts ...SetOption) error {
	cfg := &setConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := rewrite.SetEntry(path, key, value, cfg.plain, cfg.keysFilePath); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
