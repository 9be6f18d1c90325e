package dotenv

import "strings"

// QuoteStyle records how a value was delimited in the source file.
type QuoteStyle int

const (
	// QuoteNone marks a bare, unquoted value.
	QuoteNone QuoteStyle = iota
	// QuoteSingle marks a value delimited by '...'.
	QuoteSingle
	// QuoteDouble marks a value delimited by "...".
	QuoteDouble
)

func (q QuoteStyle) String() string {
	switch q {
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	default:
		return "none"
	}
}

// Entry is one KEY=value line (or folded multi-line value) in a dotenv file.
type Entry struct {
	Export bool
	Key    string
	Quote  QuoteStyle

	// RawValue is the exact text that appeared between the delimiters (or
	// the trimmed bare text), with any escape sequences left unprocessed.
	// Use [Entry.Decoded] for the value with escapes resolved.
	RawValue string

	// Line is the 1-based source line on which the entry starts.
	Line int

	// ValueStart and ValueEnd are byte offsets into the owning [Line].Text
	// spanning the value's on-disk representation, delimiters included for
	// quoted values. The rewriter splices a new representation into this
	// span and leaves the rest of Text untouched.
	ValueStart int
	ValueEnd   int
}

// Decoded returns the value with quote-specific escapes resolved. Unquoted
// values have no escapes and are returned unchanged.
func (e *Entry) Decoded() string {
	switch e.Quote {
	case QuoteSingle:
		return decodeSingleEscapes(e.RawValue)
	case QuoteDouble:
		return decodeDoubleEscapes(e.RawValue)
	default:
		return e.RawValue
	}
}

// IsEncrypted reports whether the entry's decoded value carries the
// "encrypted:" envelope prefix. Encrypted values are never expanded.
func (e *Entry) IsEncrypted() bool {
	return strings.HasPrefix(e.Decoded(), "encrypted:")
}

func decodeSingleEscapes(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

func decodeDoubleEscapes(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			}
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// EncodeDoubleEscapes is the inverse of decodeDoubleEscapes, used by the
// rewriter when re-emitting a value in double-quoted form.
func EncodeDoubleEscapes(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
