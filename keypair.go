package dotenvx

import (
	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
)

// Keypair is a secp256k1 private scalar and its compressed public point,
// both externally represented as lowercase hex.
type Keypair struct {
	privateKeyHex string
	publicKeyHex  string
}

// PrivateKeyHex returns the 64-character lowercase hex private scalar.
func (k Keypair) PrivateKeyHex() string {
	return k.privateKeyHex
}

// PublicKeyHex returns the 66-character lowercase hex compressed public point.
func (k Keypair) PublicKeyHex() string {
	return k.publicKeyHex
}

// GenerateKeypair samples a fresh secp256k1 keypair.
func GenerateKeypair() (Keypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return Keypair{}, err
	}
	priv := kp.PrivateKey()
	defer kp.Zero()
	return Keypair{
		privateKeyHex: codec.EncodeHex(priv),
		publicKeyHex:  codec.EncodeHex(kp.PublicKey()),
	}, nil
}

// DerivePublicKeyHex computes the public key hex matching a private key hex.
func DerivePublicKeyHex(privateKeyHex string) (string, error) {
	priv, err := codec.DecodeHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	pub, err := crypto.DerivePublicKey(priv)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(pub), nil
}
