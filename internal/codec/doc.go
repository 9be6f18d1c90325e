// Package codec provides strict hex and base64 encoding and decoding for
// the cryptographic values that flow through the dotenv key store: private
// and public key hex strings, and the base64 envelope carried in
// "encrypted:" values.
//
// Encoding is always well-formed (lowercase hex, padded standard base64).
// Decoding is strict: it rejects the malformed input a hand-rolled parser
// would otherwise silently accept, such as odd-length hex or base64 with
// trailing garbage after the final padding character.
package codec
