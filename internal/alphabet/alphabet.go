package alphabet

import (
	"strings"

	"vcrack/internal/domain"
)

// Options controls what Restore puts back.
type Options struct {
	KeepExtra bool
	KeepCase  bool
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// Normalize strips text down to uppercase letters and records the layout.
func Normalize(text string) domain.NormalizedText {
	var (
		b      strings.Builder
		extras []domain.Extra
		lower  []bool
	)
	b.Grow(len(text))
	i := 0
	for _, r := range text {
		switch {
		case 'A' <= r && r <= 'Z':
			b.WriteRune(r)
			lower = append(lower, false)
		case 'a' <= r && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			lower = append(lower, true)
		default:
			extras = append(extras, domain.Extra{Index: i, Char: r})
		}
		i++
	}
	return domain.NormalizedText{
		Letters: b.String(),
		Layout:  domain.Layout{Extras: extras, Lower: lower},
	}
}

// LettersOnly returns the uppercase letters of text.
func LettersOnly(text string) string {
	return Normalize(text).Letters
}

// Restore rebuilds text around letters. Extras are merged back at their
// recorded offsets in ascending order; an offset past the end appends.
func Restore(letters string, layout domain.Layout, opts Options) string {
	if !opts.KeepExtra && !opts.KeepCase {
		return letters
	}
	extras := layout.Extras
	if !opts.KeepExtra {
		extras = nil
	}
	var b strings.Builder
	b.Grow(len(letters) + len(extras))
	li, ei := 0, 0
	for pos := 0; li < len(letters) || ei < len(extras); pos++ {
		if ei < len(extras) && (extras[ei].Index <= pos || li == len(letters)) {
			b.WriteRune(extras[ei].Char)
			ei++
			continue
		}
		c := letters[li]
		if opts.KeepCase && li < len(layout.Lower) && layout.Lower[li] && 'A' <= c && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		b.WriteByte(c)
		li++
	}
	return b.String()
}
