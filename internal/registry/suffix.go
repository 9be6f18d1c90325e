package registry

import (
	"path/filepath"
	"strings"
)

// Suffix derives the DOTENV_PRIVATE_KEY_<SUFFIX> variable suffix from a
// dotenv file's base name. For ".env" itself it returns "" (the plain
// DOTENV_PRIVATE_KEY variable applies). For ".env.production" it returns
// "PRODUCTION": the remainder after ".env." is upper-cased and stripped of
// any character that is not a letter or digit.
func Suffix(path string) string {
	base := filepath.Base(path)
	if base == ".env" {
		return ""
	}

	var rest string
	switch {
	case strings.HasPrefix(base, ".env."):
		rest = base[len(".env."):]
	default:
		rest = strings.TrimPrefix(base, ".")
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(rest) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VariableName returns the DOTENV_PRIVATE_KEY environment variable name that
// serves the given dotenv file path.
func VariableName(path string) string {
	if s := Suffix(path); s != "" {
		return "DOTENV_PRIVATE_KEY_" + s
	}
	return "DOTENV_PRIVATE_KEY"
}

// KeysFilePath returns the conventional sibling keys file for a dotenv file:
// the same directory, named ".env.keys".
func KeysFilePath(envPath string) string {
	return filepath.Join(filepath.Dir(envPath), ".env.keys")
}
