// Package loader resolves one or more dotenv files into a single
// name-to-value environment map: parsing, decrypting, and expanding in the
// order laid out by the component design, so the value ultimately bound for
// a key is always the one computed from the last entry in the last file
// that defines it.
package loader
