package crypto

import (
	"crypto/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Keypair holds a secp256k1 private scalar and its compressed public point.
type Keypair struct {
	priv *secp256k1.PrivateKey
}

// GenerateKeypair samples a cryptographically strong private scalar uniformly
// in [1, n) by rejection sampling: 32 random bytes are drawn and retried
// whenever they are zero or not below the curve order n.
func GenerateKeypair() (*Keypair, error) {
	buf := make([]byte, PrivateKeySize)
	defer zero(buf)

	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, ErrRngFailure
		}

		var scalar secp256k1.ModNScalar
		overflow := scalar.SetByteSlice(buf)
		if overflow || scalar.IsZero() {
			continue
		}

		priv := secp256k1.NewPrivateKey(&scalar)
		scalar.Zero()
		return &Keypair{priv: priv}, nil
	}
}

// NewKeypairFromPrivateKey builds a Keypair from a raw 32-byte scalar,
// validating it lies in [1, n) as [GenerateKeypair] would have produced.
func NewKeypairFromPrivateKey(privateKey []byte) (*Keypair, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

func parsePrivateKey(privateKey []byte) (*secp256k1.PrivateKey, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, &InvalidPrivateKey{Reason: ReasonPrivateKeyWrongSize}
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(privateKey)
	if overflow || scalar.IsZero() {
		return nil, &InvalidPrivateKey{Reason: ReasonPrivateKeyOutOfRange}
	}

	priv := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return priv, nil
}

func parsePublicKey(publicKey []byte) (*secp256k1.PublicKey, error) {
	if len(publicKey) != PublicKeySize {
		return nil, &InvalidPublicKey{Reason: ReasonPublicKeyWrongSize}
	}
	if publicKey[0] != 0x02 && publicKey[0] != 0x03 {
		return nil, &InvalidPublicKey{Reason: ReasonPublicKeyBadPrefix}
	}

	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return nil, &InvalidPublicKey{Reason: ReasonPublicKeyNotOnCurve}
	}
	return pub, nil
}

// PrivateKey returns the raw 32-byte private scalar. Callers that retain the
// result are responsible for zeroing it when done.
func (k *Keypair) PrivateKey() []byte {
	b := k.priv.Serialize()
	out := make([]byte, len(b))
	copy(out, b)
	zero(b)
	return out
}

// PublicKey returns the raw 33-byte compressed public point.
func (k *Keypair) PublicKey() []byte {
	return k.priv.PubKey().SerializeCompressed()
}

// Zero scrubs the private scalar held by the keypair.
func (k *Keypair) Zero() {
	k.priv.Key.Zero()
}

// DerivePublicKey computes the compressed public point k·G for a raw
// 32-byte private scalar without constructing a long-lived [Keypair].
func DerivePublicKey(privateKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Key.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

// ValidatePublicKey checks that publicKey is a well-formed, on-curve
// compressed secp256k1 point without otherwise using it.
func ValidatePublicKey(publicKey []byte) error {
	_, err := parsePublicKey(publicKey)
	return err
}
