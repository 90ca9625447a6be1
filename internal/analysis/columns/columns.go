// Package columns splits normalized text into the interleaved columns that a
// key of a given length enciphers with a single letter each.
package columns

import "strings"

// Split returns length columns; column i holds every letter whose index
// modulo length is i, in text order. length must be at least 1.
func Split(letters string, length int) []string {
	if length < 1 {
		panic("columns.Split: length must be positive")
	}
	bufs := make([][]byte, length)
	for i := range bufs {
		bufs[i] = make([]byte, 0, len(letters)/length+1)
	}
	for i := 0; i < len(letters); i++ {
		bufs[i%length] = append(bufs[i%length], letters[i])
	}
	out := make([]string, length)
	for i, b := range bufs {
		out[i] = string(b)
	}
	return out
}

// Interleave is the inverse of Split.
func Interleave(cols []string) string {
	total := 0
	for _, c := range cols {
		total += len(c)
	}
	var b strings.Builder
	b.Grow(total)
	for row := 0; b.Len() < total; row++ {
		for _, c := range cols {
			if row < len(c) {
				b.WriteByte(c[row])
			}
		}
	}
	return b.String()
}
