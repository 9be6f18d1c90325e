package crypto

import (
	"crypto/aes"
	"crypto/cipher"
)

// sealAESGCM encrypts plaintext under key with nonce and no associated data,
// returning ciphertext with the 16-byte authentication tag appended.
func sealAESGCM(key, nonce, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// openAESGCM decrypts ciphertextAndTag under key with nonce and no
// associated data. A tag mismatch is reported as [ErrDecryptionFailed]; the
// underlying AEAD performs the tag comparison, so this function never
// short-circuits on partial tag matches.
func openAESGCM(key, nonce, ciphertextAndTag []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertextAndTag, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
