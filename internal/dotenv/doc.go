// Package dotenv tokenises a ".env"-style file into an ordered sequence of
// comments, blank lines, and key/value entries, and expands variable and
// command references inside a value string.
//
// Parsing is pure and byte-preserving: every [Line] retains the exact
// source text it came from, and every [Entry] records the byte offsets of
// its value within that text. A caller that re-serialises a [ParsedFile]
// without touching any entry reproduces the original bytes exactly; a
// caller that splices a new value into an entry's offsets leaves everything
// else — comments, blank lines, quoting of untouched entries — undisturbed.
// This is what lets the rewriter (package rewrite) turn a plaintext value
// into an "encrypted:" one without reformatting the rest of the file.
//
// Expansion ($VAR, ${VAR:-default}, $(command)) is a separate pass over an
// already-decoded value; it never runs on an "encrypted:" value, which is
// opaque to this package.
package dotenv
