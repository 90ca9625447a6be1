// Package keylength estimates the key length of a Vigenère ciphertext.
//
// Two interchangeable estimators implement domain.KeyLengthEstimator:
//
//   - Kasiski ranks lengths by how often they divide the spacing between
//     repeated substrings of 3 to 5 letters.
//   - Coincidence ranks lengths by how close the average index of
//     coincidence of their columns is to that of English.
package keylength
