package rewrite

import (
	"fmt"
	"os"

	"github.com/fabianopinto/dotenvx-go/internal/atomicfile"
	"github.com/fabianopinto/dotenvx-go/internal/codec"
	"github.com/fabianopinto/dotenvx-go/internal/crypto"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
	"github.com/fabianopinto/dotenvx-go/internal/registry"
)

// SetEntry inserts or replaces a single KEY=value entry in path. By default
// value is encrypted against the file's public key (generating one if the
// file has none yet); with plain set, the value is written unencrypted,
// double-quoted and escaped only when it cannot be written bare.
func SetEntry(path, key, value string, plain bool, keysFilePath string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	f := dotenv.Parse(string(data))

	var raw string
	var generatedPrivateKeyHex string

	if plain {
		raw = reEmit(value)
	} else {
		publicKeyHex, generated, err := resolvePublicKey(f, "")
		if err != nil {
			return err
		}
		publicKey, err := codec.DecodeHex(publicKeyHex)
		if err != nil {
			return err
		}
		sealed, err := crypto.Seal([]byte(value), publicKey)
		if err != nil {
			return fmt.Errorf("encrypting %s: %w", key, err)
		}
		raw = `"` + dotenv.EncodeDoubleEscapes(sealed) + `"`
		generatedPrivateKeyHex = generated

		if generated != "" {
			out := appendOrReplace(f, key, raw)
			out = insertPublicKeyHeader(out, publicKeyHex)
			if err := atomicfile.Write(path, []byte(out)); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return registry.WritePrivateKey(path, keysFilePath, generatedPrivateKeyHex)
		}
	}

	out := appendOrReplace(f, key, raw)
	if err := atomicfile.Write(path, []byte(out)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// appendOrReplace splices raw into key's existing value span, or appends a
// brand new "key=raw\n" line using the file's detected line ending.
func appendOrReplace(f *dotenv.ParsedFile, key, raw string) string {
	for _, e := range f.Entries() {
		if e.Key == key {
			replace := map[*dotenv.Entry]string{e: raw}
			return f.Serialize(replace)
		}
	}

	ending := f.LineEnding
	if ending == "" {
		ending = "\n"
	}
	existing := f.Serialize(nil)
	if existing != "" && len(existing) >= len(ending) && existing[len(existing)-len(ending):] != ending {
		existing += ending
	}
	return existing + key + "=" + raw + ending
}
