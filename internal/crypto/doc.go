// Package crypto exposes the primitives used by vcrack.
//
// Contents
//
//   - Vigenère key parsing and letter shifting (ParseKey, Encrypt, Decrypt,
//     Shift, Unshift)
//   - A short BLAKE2b digest of a ciphertext, used as the report ID (Digest)
//   - A passphrase-sealed envelope for reports at rest (Seal, Open)
//   - Best-effort memory wiping for derived keys (Wipe)
//
// # Notes
//
// Encrypt and Decrypt operate on normalized text (uppercase A-Z only); any
// other byte passes through unchanged and does not advance the key.
package crypto
