package dotenvx

import "time"

const defaultCommandTimeout = 5 * time.Second

// loadConfig holds configuration for Load and Get.
type loadConfig struct {
	overload           bool
	allowCommands      bool
	commandTimeout     time.Duration
	privateKeyOverride string
	keysFilePath       string
}

func newLoadConfig() *loadConfig {
	return &loadConfig{
		allowCommands:  true,
		commandTimeout: defaultCommandTimeout,
	}
}

// encryptFileConfig holds configuration for EncryptFile.
type encryptFileConfig struct {
	includeKeys       map[string]bool
	excludeKeys       map[string]bool
	publicKeyOverride string
	keysFilePath      string
}

func newEncryptFileConfig() *encryptFileConfig {
	return &encryptFileConfig{
		excludeKeys: make(map[string]bool),
	}
}

// decryptFileConfig holds configuration for DecryptFile.
type decryptFileConfig struct {
	privateKeyOverride string
	keysFilePath       string
}

// setConfig holds configuration for Set.
type setConfig struct {
	plain        bool
	keysFilePath string
}

// LoadOption configures Load and Get.
type LoadOption func(*loadConfig)

// EncryptFileOption configures EncryptFile.
type EncryptFileOption func(*encryptFileConfig)

// DecryptFileOption configures DecryptFile.
type DecryptFileOption func(*decryptFileConfig)

// SetOption configures Set.
type SetOption func(*setConfig)

// WithOverload makes Load's result hold the file's value for a key that is
// already set in the process environment; by default the result holds the
// process environment's value for such a key. Load never modifies the
// process environment itself.
func WithOverload(overload bool) LoadOption {
	return func(c *loadConfig) {
		c.overload = overload
	}
}

// WithAllowCommands toggles whether $(...) substitutions run during
// expansion. Defaults to true.
func WithAllowCommands(allow bool) LoadOption {
	return func(c *loadConfig) {
		c.allowCommands = allow
	}
}

// WithCommandTimeout bounds how long a single $(...) substitution may run
// before it is killed and treated as a failed substitution.
func WithCommandTimeout(timeout time.Duration) LoadOption {
	return func(c *loadConfig) {
		c.commandTimeout = timeout
	}
}

// WithLoadPrivateKeyOverride supplies a private key (hex) that takes
// precedence over the registry when decrypting.
func WithLoadPrivateKeyOverride(privateKeyHex string) LoadOption {
	return func(c *loadConfig) {
		c.privateKeyOverride = privateKeyHex
	}
}

// WithLoadKeysFilePath overrides the conventional sibling .env.keys path.
func WithLoadKeysFilePath(path string) LoadOption {
	return func(c *loadConfig) {
		c.keysFilePath = path
	}
}

// WithIncludeKeys restricts EncryptFile to only the named keys. An empty or
// unset set means all eligible keys.
func WithIncludeKeys(keys ...string) EncryptFileOption {
	return func(c *encryptFileConfig) {
		c.includeKeys = make(map[string]bool, len(keys))
		for _, k := range keys {
			c.includeKeys[k] = true
		}
	}
}

// WithExcludeKeys skips the named keys when encrypting.
func WithExcludeKeys(keys ...string) EncryptFileOption {
	return func(c *encryptFileConfig) {
		for _, k := range keys {
			c.excludeKeys[k] = true
		}
	}
}

// WithPublicKeyOverride forces EncryptFile to encrypt against the given
// public key (hex) rather than an existing DOTENV_PUBLIC_KEY entry or a
// freshly generated keypair.
func WithPublicKeyOverride(publicKeyHex string) EncryptFileOption {
	return func(c *encryptFileConfig) {
		c.publicKeyOverride = publicKeyHex
	}
}

// WithEncryptKeysFilePath overrides the conventional sibling .env.keys path
// that a freshly generated private key is written to.
func WithEncryptKeysFilePath(path string) EncryptFileOption {
	return func(c *encryptFileConfig) {
		c.keysFilePath = path
	}
}

// WithDecryptPrivateKeyOverride supplies a private key (hex) that takes
// precedence over the registry when decrypting a file.
func WithDecryptPrivateKeyOverride(privateKeyHex string) DecryptFileOption {
	return func(c *decryptFileConfig) {
		c.privateKeyOverride = privateKeyHex
	}
}

// WithDecryptKeysFilePath overrides the conventional sibling .env.keys path.
func WithDecryptKeysFilePath(path string) DecryptFileOption {
	return func(c *decryptFileConfig) {
		c.keysFilePath = path
	}
}

// WithPlain makes Set write the raw value instead of encrypting it.
func WithPlain(plain bool) SetOption {
	return func(c *setConfig) {
		c.plain = plain
	}
}

// WithSetKeysFilePath overrides the conventional sibling .env.keys path.
func WithSetKeysFilePath(path string) SetOption {
	return func(c *setConfig) {
		c.keysFilePath = path
	}
}
