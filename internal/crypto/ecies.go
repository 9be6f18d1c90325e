package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/fabianopinto/dotenvx-go/internal/codec"
)

// Envelope is the decoded form of an "encrypted:" value: the ephemeral
// public key used for this one encryption, the AES-GCM nonce, and the
// ciphertext with its authentication tag appended.
type Envelope struct {
	EphemeralPublicKey []byte
	Nonce              []byte
	CiphertextAndTag   []byte
}

// Marshal concatenates the envelope fields into the on-disk byte layout:
// ephemeral_pub(33) || nonce(12) || ciphertext_and_tag.
func (e *Envelope) Marshal() []byte {
	out := make([]byte, 0, len(e.EphemeralPublicKey)+len(e.Nonce)+len(e.CiphertextAndTag))
	out = append(out, e.EphemeralPublicKey...)
	out = append(out, e.Nonce...)
	out = append(out, e.CiphertextAndTag...)
	return out
}

// UnmarshalEnvelope splits a decoded byte string into its three fields. It
// requires at least [EnvelopeMinSize] bytes, the minimum needed to hold an
// empty plaintext.
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	if len(data) < EnvelopeMinSize {
		return nil, &InvalidEnvelope{Reason: ReasonEnvelopeTooShort}
	}
	return &Envelope{
		EphemeralPublicKey: data[:PublicKeySize],
		Nonce:              data[PublicKeySize : PublicKeySize+AESNonceSize],
		CiphertextAndTag:   data[PublicKeySize+AESNonceSize:],
	}, nil
}

// sharedSecretKey computes SHA-256 of the compressed encoding of the ECDH
// shared point scalar·point. This is the reference implementation's ECIES
// variant: no HKDF, no salt, no label — the raw hash of the shared point is
// the AES key. Changing this function breaks wire compatibility with every
// envelope already committed to a repository.
func sharedSecretKey(scalar *secp256k1.PrivateKey, point *secp256k1.PublicKey) []byte {
	var jPoint, jResult secp256k1.JacobianPoint
	point.AsJacobian(&jPoint)
	secp256k1.ScalarMultNonConst(&scalar.Key, &jPoint, &jResult)
	jResult.ToAffine()

	shared := secp256k1.NewPublicKey(&jResult.X, &jResult.Y)
	compressed := shared.SerializeCompressed()
	key := sha256.Sum256(compressed)

	zero(compressed)
	jResult.X.Zero()
	jResult.Y.Zero()
	jResult.Z.Zero()

	return key[:]
}

// Encrypt seals plaintext for the holder of recipientPublicKey (33-byte
// compressed secp256k1 point). It returns the raw envelope; callers that
// want the on-disk "encrypted:"+base64 form use [Seal].
func Encrypt(plaintext, recipientPublicKey []byte) (*Envelope, error) {
	recipient, err := parsePublicKey(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	ephemeral, err := GenerateKeypair()
	if err != nil {
		return nil, err
	}
	defer ephemeral.Zero()

	key := sharedSecretKey(ephemeral.priv, recipient)
	defer zero(key)

	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, ErrRngFailure
	}

	ciphertext, err := sealAESGCM(key, nonce, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		EphemeralPublicKey: ephemeral.PublicKey(),
		Nonce:              nonce,
		CiphertextAndTag:   ciphertext,
	}, nil
}

// Decrypt opens an envelope with the recipient's 32-byte private scalar.
func Decrypt(env *Envelope, privateKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Key.Zero()

	ephemeral, err := parsePublicKey(env.EphemeralPublicKey)
	if err != nil {
		return nil, &InvalidEnvelope{Reason: ReasonEnvelopeBadPoint}
	}

	key := sharedSecretKey(priv, ephemeral)
	defer zero(key)

	return openAESGCM(key, env.Nonce, env.CiphertextAndTag)
}

// Seal encrypts plaintext for recipientPublicKey and returns the on-disk
// "encrypted:"+base64(envelope) string form, as found in a dotenv value.
func Seal(plaintext, recipientPublicKey []byte) (string, error) {
	env, err := Encrypt(plaintext, recipientPublicKey)
	if err != nil {
		return "", err
	}
	return EncryptedPrefix + codec.EncodeB64(env.Marshal()), nil
}

// Open is the inverse of [Seal]: it strips the "encrypted:" prefix,
// base64-decodes, unmarshals the envelope, and decrypts it with privateKey.
func Open(sealed string, privateKey []byte) ([]byte, error) {
	rest, ok := strings.CutPrefix(sealed, EncryptedPrefix)
	if !ok {
		return nil, &InvalidEnvelope{Reason: ReasonEnvelopeMissingPrefix}
	}
	raw, err := codec.DecodeB64(rest)
	if err != nil {
		return nil, &InvalidEnvelope{Reason: ReasonEnvelopeBadBase64}
	}
	env, err := UnmarshalEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return Decrypt(env, privateKey)
}
