package rewrite

import (
	"fmt"
	"os"
	"strings"

	"github.com/fabianopinto/dotenvx-go/internal/atomicfile"
	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
	"github.com/fabianopinto/dotenvx-go/internal/registry"
)

// PublicKeyEntryName is the well-known key a dotenv file's public key is
// recorded under.
const PublicKeyEntryName = "DOTENV_PUBLIC_KEY"

var bannerLines = []string{
	"#/-------------------[DOTENV_PUBLIC_KEY]--------------------/",
	"#/            public-key encryption for .env files          /",
	"#/       [how it works](https://dotenvx.com/encryption)     /",
	"#/-------------------------------------------------------/",
}

// EncryptOptions configures [EncryptFile].
type EncryptOptions struct {
	IncludeKeys       map[string]bool
	ExcludeKeys       map[string]bool
	PublicKeyOverride string
	KeysFilePath      string
}

// DecryptOptions configures [DecryptFile].
type DecryptOptions struct {
	PrivateKeyOverride string
	KeysFilePath       string
}

func eligibleForEncryption(e *dotenv.Entry, opts EncryptOptions) bool {
	if e.Key == PublicKeyEntryName {
		return false
	}
	if len(opts.IncludeKeys) > 0 && !opts.IncludeKeys[e.Key] {
		return false
	}
	if opts.ExcludeKeys[e.Key] {
		return false
	}
	return !e.IsEncrypted()
}

// EncryptFile encrypts every eligible plaintext entry in path against a
// public key (an explicit override, an existing DOTENV_PUBLIC_KEY entry, or
// a freshly generated keypair, in that order of preference) and writes the
// file back atomically.
func EncryptFile(path string, opts EncryptOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	publicKeyHex, generatedPrivateKeyHex, err := resolvePublicKey(f, opts.PublicKeyOverride)
	if err != nil {
		return err
	}
	publicKey, err := codec.DecodeHex(publicKeyHex)
	if err != nil {
		return err
	}
	if err := crypto.ValidatePublicKey(publicKey); err != nil {
		return err
	}

	replace := make(map[*dotenv.Entry]string)
	for _, e := range f.Entries() {
		if !eligibleForEncryption(e, opts) {
			continue
		}
		sealed, err := crypto.Seal([]byte(e.Decoded()), publicKey)
		if err != nil {
			return fmt.Errorf("encrypting %s (line %d): %w", e.Key, e.Line, err)
		}
		replace[e] = `"` + dotenv.EncodeDoubleEscapes(sealed) + `"`
	}

	out := f.Serialize(replace)
	if _, ok := f.Lookup(PublicKeyEntryName); !ok {
		out = insertPublicKeyHeader(out, publicKeyHex)
	}

	if err := atomicfile.Write(path, []byte(out)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if generatedPrivateKeyHex != "" {
		if err := registry.WritePrivateKey(path, opts.KeysFilePath, generatedPrivateKeyHex); err != nil {
			return fmt.Errorf("writing private key: %w", err)
		}
	}
	return nil
}

// resolvePublicKey returns the public key hex to encrypt against, and, when
// a fresh keypair had to be generated, that keypair's private key hex (empty
// otherwise).
func resolvePublicKey(f *dotenv.ParsedFile, override string) (publicKeyHex, generatedPrivateKeyHex string, err error) {
	if override != "" {
		return override, "", nil
	}
	if existing, ok := f.Lookup(PublicKeyEntryName); ok {
		return existing, "", nil
	}
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return "", "", err
	}
	priv := kp.PrivateKey()
	defer kp.Zero()
	return codec.EncodeHex(kp.PublicKey()), codec.EncodeHex(priv), nil
}

func insertPublicKeyHeader(content, publicKeyHex string) string {
	var b strings.Builder
	for _, line := range bannerLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s=\"%s\"\n", PublicKeyEntryName, publicKeyHex)

	end := leadingCommentBlockEnd(content)
	return content[:end] + b.String() + content[end:]
}

// leadingCommentBlockEnd returns the byte offset immediately after a
// contiguous run of comment lines (and only comment lines) at the very
// start of content. It is 0 when the file does not begin with a comment.
func leadingCommentBlockEnd(content string) int {
	pos := 0
	for {
		nl := strings.IndexByte(content[pos:], '\n')
		var line string
		if nl < 0 {
			line = content[pos:]
		} else {
			line = content[pos : pos+nl+1]
		}
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		pos += len(line)
		if nl < 0 {
			break
		}
	}
	return pos
}

// DecryptFile opens every "encrypted:" entry in path with the private key
// matching the file's own DOTENV_PUBLIC_KEY entry, resolved from the
// registry (or an explicit override), and writes the file back atomically
// with plaintext values restored in each entry's own quote style.
func DecryptFile(path string, opts DecryptOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	hasEncrypted := false
	for _, e := range f.Entries() {
		if e.Key != PublicKeyEntryName && e.IsEncrypted() {
			hasEncrypted = true
			break
		}
	}
	if !hasEncrypted {
		return nil
	}

	reg, err := registry.Build(path, opts.KeysFilePath, opts.PrivateKeyOverride)
	if err != nil {
		return err
	}

	publicKeyHex, _ := f.Lookup(PublicKeyEntryName)
	privateKeyHex, ok := reg.Lookup(publicKeyHex)
	if !ok {
		return &registry.MissingPrivateKey{PublicKeyHex: publicKeyHex}
	}
	privateKey, err := codec.DecodeHex(privateKeyHex)
	if err != nil {
		return err
	}

	replace := make(map[*dotenv.Entry]string)
	for _, e := range f.Entries() {
		if e.Key == PublicKeyEntryName || !e.IsEncrypted() {
			continue
		}
		plaintext, err := crypto.Open(e.Decoded(), privateKey)
		if err != nil {
			return fmt.Errorf("decrypting %s (line %d): %w", e.Key, e.Line, err)
		}
		replace[e] = reEmitQuoted(plaintext, e.Quote)
	}

	if err := atomicfile.Write(path, []byte(f.Serialize(replace))); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// reEmit chooses a bare representation when the plaintext is safe to write
// unquoted, and a double-quoted, escaped representation otherwise.
func reEmit(plaintext string) string {
	if plaintext != "" && !needsQuoting(plaintext) {
		return plaintext
	}
	return `"` + dotenv.EncodeDoubleEscapes(plaintext) + `"`
}

// reEmitQuoted re-emits plaintext in the given quote style, falling back to
// the double-quoted, escaped form when that style cannot carry the value.
func reEmitQuoted(plaintext string, style dotenv.QuoteStyle) string {
	switch style {
	case dotenv.QuoteNone:
		return reEmit(plaintext)
	case dotenv.QuoteSingle:
		if !strings.ContainsAny(plaintext, "'\\\n\r") {
			return "'" + plaintext + "'"
		}
	}
	return `"` + dotenv.EncodeDoubleEscapes(plaintext) + `"`
}

func needsQuoting(s string) bool {
	if strings.TrimSpace(s) != s {
		return true
	}
	for _, r := range s {
		switch r {
		case '"', '\'', '#', '\n', '\r', '\\', '$':
			return true
		}
	}
	return false
}
