package dotenvx

import (
	"os"
	"strings"
	"testing"
)

func TestEncryptFile_ThenDecryptFile_RoundTrip(t *testing.T) {
	path := writeEnvFile(t, "A=plain\nB=secret\n")

	if err := EncryptFile(path, WithExcludeKeys("A")); err != nil {
		t.Fatalf("EncryptFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "A=plain") {
		t.Errorf("excluded key A was modified: %s", data)
	}
	if !strings.Contains(string(data), "DOTENV_PUBLIC_KEY") {
		t.Errorf("expected a DOTENV_PUBLIC_KEY header: %s", data)
	}

	if err := DecryptFile(path); err != nil {
		t.Fatalf("DecryptFile() error: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `B="secret"`) {
		t.Errorf("B was not restored to plaintext: %s", data)
	}
}

func TestEncryptFile_WithPublicKeyOverride(t *testing.T) {
	kp, err := GenerateKeypair()
	if err != nil {
		t.Fatal(err)
	}
	path := writeEnvFile(t, "A=secret\n")

	if err := EncryptFile(path, WithPublicKeyOverride(kp.PublicKeyHex())); err != nil {
		t.Fatalf("EncryptFile() error: %v", err)
	}

	env, err := Load([]string{path}, WithLoadPrivateKeyOverride(kp.PrivateKeyHex()))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if env["A"] != "secret" {
		t.Errorf("A = %q, want secret", env["A"])
	}
}
