// Package rewrite implements the dotenv file rewriter: encrypting or
// decrypting selected entries in place while preserving every byte outside
// the value regions that actually change.
package rewrite
