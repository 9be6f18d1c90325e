package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fabianopinto/dotenvx-go/internal/rewrite"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsVariableReference(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=1\nB=${A}/x\n")

	got, err := Load([]string{path}, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["A"] != "1" || got["B"] != "1/x" {
		t.Errorf("got %+v, want A=1 B=1/x", got)
	}
}

func TestLoad_DecryptsEncryptedValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=plain\nB=world\n")

	if err := rewrite.EncryptFile(path, rewrite.EncryptOptions{IncludeKeys: map[string]bool{"B": true}}); err != nil {
		t.Fatalf("EncryptFile() error: %v", err)
	}

	got, err := Load([]string{path}, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["A"] != "plain" || got["B"] != "world" {
		t.Errorf("got %+v, want A=plain B=world", got)
	}
}

func TestLoad_MultiFileLastWins(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, ".env", "K=base\n")
	local := writeFile(t, dir, ".env.local", "K=local\n")

	got, err := Load([]string{base, local}, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["K"] != "local" {
		t.Errorf("K = %q, want local", got["K"])
	}
}

func TestLoad_OverloadFalseRetainsProcessBinding(t *testing.T) {
	t.Setenv("DOTENVX_TEST_K", "from-process")
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "DOTENVX_TEST_K=from-file\n")

	got, err := Load([]string{path}, Options{Overload: false})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["DOTENVX_TEST_K"] != "from-process" {
		t.Errorf("DOTENVX_TEST_K = %q, want from-process (overload=false retains existing binding)", got["DOTENVX_TEST_K"])
	}
}

func TestLoad_OverloadTrueUsesFileValue(t *testing.T) {
	t.Setenv("DOTENVX_TEST_K2", "from-process")
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "DOTENVX_TEST_K2=from-file\n")

	got, err := Load([]string{path}, Options{Overload: true})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["DOTENVX_TEST_K2"] != "from-file" {
		t.Errorf("DOTENVX_TEST_K2 = %q, want from-file (overload=true)", got["DOTENVX_TEST_K2"])
	}
}

func TestLoad_MissingPrivateKeyFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=secret\n")
	if err := rewrite.EncryptFile(path, rewrite.EncryptOptions{}); err != nil {
		t.Fatalf("EncryptFile() error: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, ".env.keys")); err != nil {
		t.Fatal(err)
	}

	if _, err := Load([]string{path}, Options{}); err == nil {
		t.Fatal("expected Load to fail without a matching private key")
	}
}
