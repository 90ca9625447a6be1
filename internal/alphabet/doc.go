// Package alphabet reduces text to the uppercase A-Z alphabet the analysis
// works on, and puts the removed characters and letter case back afterwards.
//
// Only ASCII letters are letters. Digits, whitespace, punctuation and any
// non-ASCII rune are recorded as extras at their rune offset.
package alphabet
