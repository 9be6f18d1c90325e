package dotenv

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Lookup resolves a variable name to a value. It is consulted in the order
// documented in [ExpandValue]: entries parsed so far in the current file,
// then the process environment, then empty.
type Lookup func(name string) (value string, ok bool)

// CommandDiagnostic is reported when a $(...) substitution's command fails
// or times out. Command failures are non-fatal: the substitution yields the
// empty string and expansion continues.
type CommandDiagnostic struct {
	Command string
	Err     error
}

// ExpandOptions configures [ExpandValue].
type ExpandOptions struct {
	// AllowCommands gates $(...) substitution. When false, command
	// substitution text is left untouched rather than executed.
	AllowCommands bool
	// Timeout bounds how long a substituted command may run before it is
	// killed. Zero means the 5-second default.
	Timeout time.Duration
	// Diagnostics, if non-nil, receives one CommandDiagnostic per failed or
	// timed-out command substitution.
	Diagnostics *[]CommandDiagnostic
	// ParseDiagnostics, if non-nil, receives one ParseError per
	// unterminated $( or ${ encountered during expansion.
	ParseDiagnostics *[]*ParseError
}

const defaultCommandTimeout = 5 * time.Second

// ExpandValue performs variable and command substitution on value, per the
// grammar:
//
//	$(cmd)             command substitution; stdout, trailing newline trimmed
//	$VAR               greedy identifier
//	${VAR}             explicit identifier
//	${VAR:-default}    default if VAR unset or empty
//	${VAR-default}     default if VAR unset (empty is kept)
//
// A '$' not followed by '(', '{', or an identifier-start character is kept
// literal. Both substitution forms are resolved in a single left-to-right
// traversal of value.
func ExpandValue(value string, lookup Lookup, opts ExpandOptions) string {
	e := &expander{lookup: lookup, opts: opts}
	return e.expand(value)
}

type expander struct {
	lookup Lookup
	opts   ExpandOptions
}

func (e *expander) expand(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '$' {
			out.WriteByte(s[i])
			i++
			continue
		}

		// s[i] == '$'
		switch {
		case i+1 < len(s) && s[i+1] == '(':
			end := findMatching(s, i+1, '(', ')')
			if end < 0 {
				e.reportUnterminated()
				// Unterminated substitution: keep the rest literally.
				out.WriteString(s[i:])
				return out.String()
			}
			cmd := s[i+2 : end]
			out.WriteString(e.substituteCommand(cmd))
			i = end + 1

		case i+1 < len(s) && s[i+1] == '{':
			end := findMatching(s, i+1, '{', '}')
			if end < 0 {
				e.reportUnterminated()
				out.WriteString(s[i:])
				return out.String()
			}
			inner := s[i+2 : end]
			out.WriteString(e.substituteBraced(inner))
			i = end + 1

		case i+1 < len(s) && isIdentStart(s[i+1]):
			j := i + 1
			for j < len(s) && isIdentCont(s[j]) {
				j++
			}
			name := s[i+1 : j]
			out.WriteString(e.lookupValue(name))
			i = j

		default:
			out.WriteByte('$')
			i++
		}
	}
	return out.String()
}

// lookupValue resolves name via the caller's lookup, then the process
// environment, then empty.
func (e *expander) lookupValue(name string) string {
	if e.lookup != nil {
		if v, ok := e.lookup(name); ok {
			return v
		}
	}
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return ""
}

// substituteBraced handles the inside of "${...}": a bare name, or a name
// followed by ":-default" / "-default".
func (e *expander) substituteBraced(inner string) string {
	if idx := strings.Index(inner, ":-"); idx >= 0 {
		name, def := inner[:idx], inner[idx+2:]
		if v := e.lookupRaw(name); v == "" {
			return e.expand(def)
		} else {
			return v
		}
	}
	if idx := strings.Index(inner, "-"); idx >= 0 {
		name, def := inner[:idx], inner[idx+1:]
		if v, ok := e.lookupExists(name); !ok {
			return e.expand(def)
		} else {
			return v
		}
	}
	return e.lookupValue(inner)
}

// lookupRaw returns the resolved value of name, or "" if unset or empty.
func (e *expander) lookupRaw(name string) string {
	return e.lookupValue(name)
}

// lookupExists returns the resolved value of name and whether it is set at
// all (distinguishing unset from set-but-empty).
func (e *expander) lookupExists(name string) (string, bool) {
	if e.lookup != nil {
		if v, ok := e.lookup(name); ok {
			return v, true
		}
	}
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	return "", false
}

// substituteCommand runs cmd through the host shell and returns its
// standard output with one trailing newline trimmed. Failures and timeouts
// are non-fatal: they yield the empty string and are recorded as a
// diagnostic when the caller supplied one.
func (e *expander) substituteCommand(cmd string) string {
	if !e.opts.AllowCommands {
		return "$(" + cmd + ")"
	}

	timeout := e.opts.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	var stdout bytes.Buffer
	c.Stdout = &stdout
	err := c.Run()
	if err != nil {
		if e.opts.Diagnostics != nil {
			*e.opts.Diagnostics = append(*e.opts.Diagnostics, CommandDiagnostic{Command: cmd, Err: err})
		}
		return ""
	}

	out := stdout.String()
	out = strings.TrimSuffix(out, "\n")
	return out
}

func (e *expander) reportUnterminated() {
	if e.opts.ParseDiagnostics != nil {
		*e.opts.ParseDiagnostics = append(*e.opts.ParseDiagnostics, &ParseError{Kind: ErrUnterminatedSubstitution})
	}
}

// findMatching returns the index of the byte closing the open delimiter at
// s[openAt], counting nested occurrences of the same delimiter pair, or -1
// if there is no matching close before the end of s.
func findMatching(s string, openAt int, open, close byte) int {
	depth := 0
	for i := openAt; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
