package dotenvx

import "github.com/fabianopinto/dotenvx-go/internal/rewrite"

// EncryptFile encrypts eligible plaintext entries in a dotenv file in
// place, preserving every byte outside the changed value regions.
func EncryptFile(path string, opts ...EncryptFileOption) error {
	cfg := newEncryptFileConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return rewrite.EncryptFile(path, rewrite.EncryptOptions{
		IncludeKeys:       cfg.includeKeys,
		ExcludeKeys:       cfg.excludeKeys,
		PublicKeyOverride: cfg.publicKeyOverride,
		KeysFilePath:      cfg.keysFilePath,
	})
}

// DecryptFile decrypts every "encrypted:" entry in a dotenv file in place.
func DecryptFile(path string, opts ...DecryptFileOption) error {
	cfg := &decryptFileConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return rewrite.DecryptFile(path, rewrite.DecryptOptions{
		PrivateKeyOverride: cfg.privateKeyOverride,
		KeysFilePath:       cfg.keysFilePath,
	})
}
