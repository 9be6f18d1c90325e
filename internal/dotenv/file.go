package dotenv

// LineKind classifies one logical line of a parsed file.
type LineKind int

const (
	// LineBlank is a line containing only whitespace.
	LineBlank LineKind = iota
	// LineComment is a line whose first non-whitespace character is '#'.
	LineComment
	// LineEntry is a KEY=value line; see Line.Entry.
	LineEntry
	// LineInvalid is a line that could not be parsed as any of the above.
	// Its original text is preserved verbatim so round-tripping an
	// untouched file still reproduces it byte for byte.
	LineInvalid
)

// Line is one logical line of a parsed dotenv file. Text is always the
// exact original source bytes for the line (including its line terminator,
// or none for a final line without one); re-serialising every Line in order
// reproduces the source exactly.
type Line struct {
	Kind  LineKind
	Text  string
	Entry *Entry // non-nil iff Kind == LineEntry
}

// ParsedFile is an ordered sequence of lines produced by [Parse].
type ParsedFile struct {
	Lines       []Line
	LineEnding  string // "\n" or "\r\n", detected from the source
	Diagnostics []*ParseError
}

// Serialize reproduces the file's source bytes from its lines, optionally
// substituting a new value representation for selected entries via replace.
// Passing a nil replace reproduces the original source byte for byte.
func (f *ParsedFile) Serialize(replace map[*Entry]string) string {
	var out []byte
	for _, line := range f.Lines {
		if line.Kind == LineEntry && replace != nil {
			if newValue, ok := replace[line.Entry]; ok {
				out = append(out, line.Text[:line.Entry.ValueStart]...)
				out = append(out, newValue...)
				out = append(out, line.Text[line.Entry.ValueEnd:]...)
				continue
			}
		}
		out = append(out, line.Text...)
	}
	return string(out)
}

// Entries returns every entry in the file in source order, last-wins
// duplicates included (callers that want "last occurrence wins" semantics
// apply that reduction themselves, since the rewriter needs every
// occurrence to splice correctly).
func (f *ParsedFile) Entries() []*Entry {
	var entries []*Entry
	for i := range f.Lines {
		if f.Lines[i].Kind == LineEntry {
			entries = append(entries, f.Lines[i].Entry)
		}
	}
	return entries
}

// Lookup returns the decoded value of the last entry with the given key, if
// any — the load-time "last occurrence wins" rule restricted to one file.
func (f *ParsedFile) Lookup(key string) (string, bool) {
	var value string
	var found bool
	for _, e := range f.Entries() {
		if e.Key == key {
			value = e.Decoded()
			found = true
		}
	}
	return value, found
}
