package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabianopinto/dotenvx-go/internal/atomicfile"
	"github.com/fabianopinto/dotenvx-go/internal/dotenv"
)

// WritePrivateKey records privateKeyHex under the DOTENV_PRIVATE_KEY
// variable that serves envPath, in the sibling (or overridden) keys file.
// If the variable already has an entry, its value is replaced in place; a
// sibling keys file's comment-per-section convention (§6) is produced for a
// brand new entry: a `# <basename of envPath>` comment line immediately
// above the key.
func WritePrivateKey(envPath, keysFileOverride, privateKeyHex string) error {
	keysPath := keysFileOverride
	if keysPath == "" {
		keysPath = KeysFilePath(envPath)
	}
	varName := VariableName(envPath)

	existing := ""
	if data, err := os.ReadFile(keysPath); err == nil {
		existing = string(data)
	} else if !os.IsNotExist(err) {
		return err
	}

	f := dotenv.Parse(existing)
	newValueRepr := `"` + privateKeyHex + `"`

	for _, e := range f.Entries() {
		if e.Key == varName {
			replace := map[*dotenv.Entry]string{e: newValueRepr}
			return atomicfile.Write(keysPath, []byte(f.Serialize(replace)))
		}
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "# %s\n%s=%s\n", filepath.Base(envPath), varName, newValueRepr)

	return atomicfile.Write(keysPath, []byte(b.String()))
}
