package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	dotenvx "github.com/fabianopinto/dotenvx-go"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"not exist", os.ErrNotExist, 1},
		{"missing private key", &dotenvx.MissingPrivateKey{PublicKeyHex: "ab"}, 2},
		{"decryption failed", dotenvx.ErrDecryptionFailed, 2},
		{"generic", errors.New("boom"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestKeypairCmd(t *testing.T) {
	out, err := runCLI(t, "keypair")
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("DOTENV_PUBLIC_KEY=")) {
		t.Errorf("output missing DOTENV_PUBLIC_KEY: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("DOTENV_PRIVATE_KEY=")) {
		t.Errorf("output missing DOTENV_PRIVATE_KEY: %q", out)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SECRET=hunter2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "encrypt", "-f", path); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("encrypted:")) {
		t.Errorf("file not encrypted: %s", data)
	}

	if _, err := runCLI(t, "decrypt", "-f", path); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`SECRET="hunter2"`)) {
		t.Errorf("file not restored: %s", data)
	}
}

func TestSetAndGetCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(""), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "set", "GREETING", "hello world", "-f", path, "--plain"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err := runCLI(t, "get", "GREETING", "-f", path)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "hello world\n" {
		t.Errorf("get output = %q, want %q", out, "hello world\n")
	}
}

func TestLsCmd(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".env", ".env.production", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0600); err != nil {
			t.Fatal(err)
		}
	}

	out, err := runCLI(t, "ls", dir)
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte(".env")) || !bytes.Contains([]byte(out), []byte(".env.production")) {
		t.Errorf("ls output missing expected files: %q", out)
	}
	if bytes.Contains([]byte(out), []byte("README.md")) {
		t.Errorf("ls output should not list README.md: %q", out)
	}
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GREETING=hello\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "run", "-f", path, "--", "sh", "-c", "echo $GREETING")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("run output = %q, want %q", out, "hello\n")
	}
}
