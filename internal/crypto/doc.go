// Package crypto implements the per-value hybrid encryption scheme used to
// seal secrets inside a dotenv file.
//
// # Algorithm Suite
//
//   - secp256k1: the elliptic curve used for key agreement. Private keys are
//     32-byte scalars in [1, n); public keys are 33-byte compressed points.
//   - ECDH: the shared point S = k·P is computed directly on the curve, with
//     no explicit key-derivation label — the symmetric key is SHA-256 of the
//     compressed encoding of S. This mirrors the reference tool this package
//     is wire-compatible with; see [ErrDecryptionFailed] for the failure mode
//     when two implementations disagree on this step.
//   - AES-256-GCM: authenticated encryption of the plaintext under the
//     derived key, with a fresh 12-byte nonce per call and no associated
//     data.
//
// # Envelope
//
// An encryption produces a single byte string, the "envelope":
//
//	ephemeral_pubkey_compressed(33) || nonce(12) || ciphertext || tag(16)
//
// The envelope is self-describing by length: the caller need only know the
// three fixed-size fields to split it back apart. [Envelope] is fixed
// wire-format; it is distinct from the "encrypted:"-prefixed, base64-encoded
// string form that the dotenv file format stores, which [Seal] produces and
// [Open] reads.
//
// # Key Hygiene
//
// Private scalars and derived symmetric keys are held in byte slices that
// are explicitly zeroed when a [Keypair] or decryption call releases them.
// This package never logs plaintext or key material.
package crypto
