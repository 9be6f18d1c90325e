package dotenv

import "strings"

// Parse tokenises source into a [ParsedFile]. Parsing never fails outright:
// malformed lines are recorded as diagnostics and preserved verbatim as
// [LineInvalid] lines so the file still round-trips byte for byte.
func Parse(source string) *ParsedFile {
	p := &scanner{src: source, line: 1, col: 1}

	ending := "\n"
	if strings.Contains(source, "\r\n") {
		ending = "\r\n"
	}

	f := &ParsedFile{LineEnding: ending}
	for p.pos < len(p.src) {
		f.Lines = append(f.Lines, p.parseLine(f))
	}
	return f
}

// scanner walks source one byte at a time, tracking line/column for
// diagnostics.
type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

func (p *scanner) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *scanner) peekAt(offset int) byte {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *scanner) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *scanner) atEOF() bool {
	return p.pos >= len(p.src)
}

func (p *scanner) atEOL() bool {
	return p.atEOF() || p.peek() == '\n' || p.peek() == '\r'
}

// skipHSpace consumes spaces and tabs (not newlines) and returns the count consumed.
func (p *scanner) skipHSpace() int {
	n := 0
	for !p.atEOF() && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance()
		n++
	}
	return n
}

// consumeEOL consumes the line terminator at the current position, if any
// ("\r\n" or "\n").
func (p *scanner) consumeEOL() {
	if p.peek() == '\r' && p.peekAt(1) == '\n' {
		p.advance()
		p.advance()
		return
	}
	if p.peek() == '\n' {
		p.advance()
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanIdentifier consumes [A-Za-z_][A-Za-z0-9_]* at the current position, or
// consumes nothing and returns "" if the position doesn't start an identifier.
func (p *scanner) scanIdentifier() string {
	if !isIdentStart(p.peek()) {
		return ""
	}
	start := p.pos
	p.advance()
	for isIdentCont(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

// parseLine consumes one logical line starting at the scanner's current
// position and returns it. A logical line is usually one physical line, but
// an entry with an open double-quoted value folds in subsequent physical
// lines until the closing quote.
func (p *scanner) parseLine(f *ParsedFile) Line {
	lineStart := p.pos
	startLine := p.line

	save := *p
	p.skipHSpace()
	if p.atEOL() {
		p.consumeEOL()
		return Line{Kind: LineBlank, Text: p.src[lineStart:p.pos]}
	}
	if p.peek() == '#' {
		p.consumeToEOLIncl()
		return Line{Kind: LineComment, Text: p.src[lineStart:p.pos]}
	}
	*p = save

	entry, ok := p.parseEntry(f, startLine)
	if !ok {
		return Line{Kind: LineInvalid, Text: p.src[lineStart:p.pos]}
	}
	return Line{Kind: LineEntry, Text: p.src[lineStart:p.pos], Entry: entry}
}

// consumeToEOLIncl consumes the rest of the current physical line, including
// its terminator.
func (p *scanner) consumeToEOLIncl() {
	for !p.atEOL() {
		p.advance()
	}
	p.consumeEOL()
}

func (p *scanner) parseEntry(f *ParsedFile, startLine int) (*Entry, bool) {
	lineStart := p.pos

	exportFlag := false
	save := *p
	ident := p.scanIdentifier()
	if ident == "export" {
		n := p.skipHSpace()
		if n > 0 && isIdentStart(p.peek()) {
			exportFlag = true
		} else {
			*p = save
		}
	} else {
		*p = save
	}

	key := p.scanIdentifier()
	if key == "" {
		f.diag(p, ErrInvalidKey, startLine)
		p.pos = lineStart
		p.consumeToEOLIncl()
		return nil, false
	}

	p.skipHSpace()
	if p.peek() != '=' {
		f.diag(p, ErrMissingEquals, startLine)
		p.pos = lineStart
		p.consumeToEOLIncl()
		return nil, false
	}
	p.advance() // consume '='
	hadLeadingSpace := p.skipHSpace() > 0

	switch p.peek() {
	case '"':
		return p.parseQuotedValue(f, lineStart, startLine, exportFlag, key, '"', QuoteDouble)
	case '\'':
		return p.parseQuotedValue(f, lineStart, startLine, exportFlag, key, '\'', QuoteSingle)
	default:
		return p.parseBareValue(lineStart, startLine, exportFlag, key, hadLeadingSpace), true
	}
}

func (p *scanner) parseQuotedValue(f *ParsedFile, lineStart int, startLine int, exportFlag bool, key string, quoteChar byte, style QuoteStyle) (*Entry, bool) {
	valueStart := p.pos
	p.advance() // opening quote

	var raw strings.Builder
	for {
		if p.atEOF() {
			f.diag(p, ErrUnterminatedQuote, startLine)
			return nil, false
		}
		c := p.peek()
		if style == QuoteSingle && c == '\n' {
			f.diag(p, ErrUnterminatedQuote, startLine)
			return nil, false
		}
		if c == '\\' {
			nc := p.peekAt(1)
			isEscape := (style == QuoteSingle && nc == '\'') ||
				(style == QuoteDouble && (nc == '"' || nc == '\\' || nc == 'n' || nc == 'r' || nc == 't'))
			if isEscape {
				raw.WriteByte(p.advance())
				raw.WriteByte(p.advance())
				continue
			}
			raw.WriteByte(p.advance())
			continue
		}
		if c == quoteChar {
			p.advance() // closing quote
			break
		}
		raw.WriteByte(p.advance())
	}
	valueEnd := p.pos

	// Consume the remainder of the final physical line: an optional trailing
	// comment, then the line terminator.
	p.skipHSpace()
	if p.peek() == '#' {
		p.consumeToEOLIncl()
	} else {
		p.consumeEOL()
	}

	return &Entry{
		Export:     exportFlag,
		Key:        key,
		Quote:      style,
		RawValue:   raw.String(),
		Line:       startLine,
		ValueStart: valueStart - lineStart,
		ValueEnd:   valueEnd - lineStart,
	}, true
}

func (p *scanner) parseBareValue(lineStart int, startLine int, exportFlag bool, key string, hadLeadingSpace bool) *Entry {
	contentStart := p.pos

	restStart := p.pos
	for !p.atEOL() {
		p.advance()
	}
	rest := p.src[restStart:p.pos]
	p.consumeEOL()

	// Find a '#' preceded by whitespace (or at index 0 if whitespace was
	// already consumed after '=') that starts a trailing comment.
	commentAt := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] != '#' {
			continue
		}
		precededByWS := (i == 0 && hadLeadingSpace) || (i > 0 && (rest[i-1] == ' ' || rest[i-1] == '\t'))
		if precededByWS {
			commentAt = i
			break
		}
	}

	valueText := rest
	if commentAt >= 0 {
		valueText = rest[:commentAt]
	}
	valueText = strings.TrimRight(valueText, " \t")

	valueStart := contentStart - lineStart
	valueEnd := valueStart + len(valueText)

	return &Entry{
		Export:     exportFlag,
		Key:        key,
		Quote:      QuoteNone,
		RawValue:   valueText,
		Line:       startLine,
		ValueStart: valueStart,
		ValueEnd:   valueEnd,
	}
}

func (f *ParsedFile) diag(p *scanner, kind ErrorKind, line int) {
	f.Diagnostics = append(f.Diagnostics, &ParseError{Line: line, Column: p.col, Kind: kind})
}
