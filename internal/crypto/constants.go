package crypto

const (
	// PrivateKeySize is the size of a secp256k1 private scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of a compressed secp256k1 public point in bytes.
	PublicKeySize = 33

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// EnvelopeMinSize is the minimum length of a decoded envelope:
	// compressed ephemeral key (33) + nonce (12) + empty ciphertext (0) + tag (16).
	EnvelopeMinSize = PublicKeySize + AESNonceSize + AESTagSize

	// EncryptedPrefix is the on-disk marker for an encrypted value.
	EncryptedPrefix = "encrypted:"
)
