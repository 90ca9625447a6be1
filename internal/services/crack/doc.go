// Package crack recovers Vigenère keys from ciphertext alone.
//
// The service runs one of two pipelines, picked by the subkey solver:
//
//   - Combinatorial: every key length is split into columns, each column
//     proposes several letters (frequency rank), and the Cartesian product of
//     those letters is decrypted and checked against an English word list.
//     The first key length that yields any English-looking decryption wins;
//     within it, the decryption with the most dictionary words is reported.
//   - Correlated: each key length gets exactly one key (correlation), and
//     keys that merely repeat a shorter one are dropped. Every surviving key
//     is reported for inspection.
package crack
