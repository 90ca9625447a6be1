// Package codec encrypts and decrypts text with a known Vigenère key.
//
// Only letters are transformed. Other characters are dropped or kept at
// their positions, and letter case is restored or not, per Options.
package codec
