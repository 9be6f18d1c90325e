package dotenv

import "testing"

func TestParse_RoundTripUnmodified(t *testing.T) {
	sources := []string{
		"",
		"A=1\n",
		"# a comment\nA=1\nB=2\n",
		"\n\nA=1\n\n",
		"export A=1\n",
		"A='single quoted'\n",
		"A=\"double quoted\"\n",
		"A=\"multi\nline\nvalue\"\nB=2\n",
		"A=bare # trailing comment\n",
		"A=bare#not a comment\n",
		"A=1\r\nB=2\r\n",
		"A=\n",
		"A=1", // no trailing newline
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			f := Parse(src)
			got := f.Serialize(nil)
			if got != src {
				t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, src)
			}
		})
	}
}

func TestParse_EntryFields(t *testing.T) {
	f := Parse("export FOO=bar\n")
	entries := f.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if !e.Export {
		t.Error("Export = false, want true")
	}
	if e.Key != "FOO" {
		t.Errorf("Key = %q, want FOO", e.Key)
	}
	if e.Decoded() != "bar" {
		t.Errorf("Decoded() = %q, want bar", e.Decoded())
	}
}

func TestParse_QuoteStyles(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		quote QuoteStyle
		value string
	}{
		{"none", "A=bare\n", QuoteNone, "bare"},
		{"single", "A='plain value'\n", QuoteSingle, "plain value"},
		{"single escaped quote", `A='it\'s quoted'` + "\n", QuoteSingle, "it's quoted"},
		{"double", `A="hello"` + "\n", QuoteDouble, "hello"},
		{"double escapes", `A="a\nb"` + "\n", QuoteDouble, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Parse(tt.src)
			entries := f.Entries()
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			e := entries[0]
			if e.Quote != tt.quote {
				t.Errorf("Quote = %v, want %v", e.Quote, tt.quote)
			}
			if e.Decoded() != tt.value {
				t.Errorf("Decoded() = %q, want %q", e.Decoded(), tt.value)
			}
		})
	}
}

func TestParse_MultilineDoubleQuoted(t *testing.T) {
	f := Parse("A=\"line1\nline2\"\nB=2\n")
	entries := f.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Decoded() != "line1\nline2" {
		t.Errorf("Decoded() = %q, want %q", entries[0].Decoded(), "line1\nline2")
	}
	if entries[1].Key != "B" {
		t.Errorf("second entry key = %q, want B", entries[1].Key)
	}
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	f := Parse("A=1\nA=2\n")
	v, ok := f.Lookup("A")
	if !ok || v != "2" {
		t.Errorf("Lookup(A) = (%q, %v), want (2, true)", v, ok)
	}
}

func TestParse_MalformedLinesRecoverable(t *testing.T) {
	f := Parse("not an entry\nA=1\n")
	if len(f.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	entries := f.Entries()
	if len(entries) != 1 || entries[0].Key != "A" {
		t.Fatalf("expected one entry A, got %+v", entries)
	}
	if f.Serialize(nil) != "not an entry\nA=1\n" {
		t.Errorf("Serialize() = %q", f.Serialize(nil))
	}
}

func TestParse_UnterminatedQuoteDiagnostic(t *testing.T) {
	f := Parse("A=\"unterminated\n")
	if len(f.Diagnostics) == 0 {
		t.Fatal("expected a diagnostic for unterminated quote")
	}
	if f.Diagnostics[0].Kind != ErrUnterminatedQuote {
		t.Errorf("Kind = %v, want %v", f.Diagnostics[0].Kind, ErrUnterminatedQuote)
	}
}

func TestSerialize_SpliceValue(t *testing.T) {
	f := Parse("A=old\nB=2\n")
	entries := f.Entries()
	replace := map[*Entry]string{entries[0]: `"new"`}
	got := f.Serialize(replace)
	want := "A=\"new\"\nB=2\n"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}
