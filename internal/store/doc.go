// Package store provides file-based persistence for vcrack.
//
// It contains concrete implementations of the domain storage interfaces:
//   - the English word list used by the dictionary validator (WordList)
//   - crack reports as JSON, optionally sealed with a passphrase (ReportFileStore)
//   - the accepted plaintext of a combinatorial crack (ResultFileWriter)
//
// All writes go through a temp file and an atomic rename.
package store
