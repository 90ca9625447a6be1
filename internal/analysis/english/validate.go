package english

import (
	"strings"
	"unicode/utf8"

	"vcrack/internal/domain"
)

// Default thresholds of the English-likeness test, in percent.
const (
	DefaultMinWordPercent   = 20
	DefaultMinLetterPercent = 85
)

// Verdict is the outcome of Validator.Check.
type Verdict struct {
	WordPercent   float64
	LetterPercent float64
	Passed        bool
}

// Validator judges whether a text reads as English: enough of its words must
// be in Words and enough of its characters must be letters or spaces.
type Validator struct {
	Words            domain.Dictionary
	MinWordPercent   float64
	MinLetterPercent float64
}

// NewValidator returns a Validator with the default thresholds.
func NewValidator(words domain.Dictionary) Validator {
	return Validator{
		Words:            words,
		MinWordPercent:   DefaultMinWordPercent,
		MinLetterPercent: DefaultMinLetterPercent,
	}
}

// Check scores text. Words are maximal runs of ASCII letters, compared in
// upper case.
func (v Validator) Check(text string) Verdict {
	if needsUpper(text) {
		text = strings.ToUpper(text)
	}
	var words, known int
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] >= 'A' && text[i] <= 'Z' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words++
			if v.Words != nil && v.Words.Contains(text[start:i]) {
				known++
			}
			start = -1
		}
	}

	var letters, total int
	for _, r := range text {
		total++
		if ('A' <= r && r <= 'Z') || r == ' ' {
			letters++
		}
	}

	var verdict Verdict
	if words > 0 {
		verdict.WordPercent = float64(known) / float64(words) * 100
	}
	if total > 0 {
		verdict.LetterPercent = float64(letters) / float64(total) * 100
	}
	verdict.Passed = words > 0 &&
		verdict.WordPercent >= v.MinWordPercent &&
		verdict.LetterPercent >= v.MinLetterPercent
	return verdict
}

func needsUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			return true
		}
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
