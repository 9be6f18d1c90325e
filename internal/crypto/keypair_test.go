package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateKeypair_Sizes(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	if len(kp.PrivateKey()) != PrivateKeySize {
		t.Errorf("private key size = %d, want %d", len(kp.PrivateKey()), PrivateKeySize)
	}
	if len(kp.PublicKey()) != PublicKeySize {
		t.Errorf("public key size = %d, want %d", len(kp.PublicKey()), PublicKeySize)
	}
	prefix := kp.PublicKey()[0]
	if prefix != 0x02 && prefix != 0x03 {
		t.Errorf("public key prefix = 0x%02x, want 0x02 or 0x03", prefix)
	}
}

func TestGenerateKeypair_Unique(t *testing.T) {
	a, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	b, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}
	if bytes.Equal(a.PrivateKey(), b.PrivateKey()) {
		t.Error("two generated keypairs have the same private key")
	}
}

func TestDerivePublicKey_MatchesGenerated(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error = %v", err)
	}

	derived, err := DerivePublicKey(kp.PrivateKey())
	if err != nil {
		t.Fatalf("DerivePublicKey() error = %v", err)
	}
	if !bytes.Equal(derived, kp.PublicKey()) {
		t.Errorf("derived public key mismatch: got %x, want %x", derived, kp.PublicKey())
	}
}

func TestNewKeypairFromPrivateKey_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
	}{
		{"too short", make([]byte, 16)},
		{"too long", make([]byte, 33)},
		{"zero scalar", make([]byte, 32)},
		{"curve order overflow", bytes.Repeat([]byte{0xff}, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKeypairFromPrivateKey(tt.key); err == nil {
				t.Fatalf("NewKeypairFromPrivateKey(%x) expected error, got nil", tt.key)
			}
		})
	}
}

func TestParsePublicKey_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
	}{
		{"too short", make([]byte, 10)},
		{"bad prefix", append([]byte{0x04}, make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parsePublicKey(tt.key); err == nil {
				t.Fatalf("parsePublicKey(%x) expected error, got nil", tt.key)
			}
		})
	}
}
