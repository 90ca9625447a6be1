package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"vcrack/internal/domain"
)

// WordList is an immutable set of uppercase words.
type WordList struct {
	words map[string]struct{}
}

// NewWordList builds a WordList from words, upper-casing each.
func NewWordList(words ...string) *WordList {
	w := &WordList{words: make(map[string]struct{}, len(words))}
	for _, s := range words {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			w.words[s] = struct{}{}
		}
	}
	return w
}

// ReadWordList reads one word per line. Blank lines are skipped.
func ReadWordList(r io.Reader) (*WordList, error) {
	w := &WordList{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.ToUpper(strings.TrimSpace(sc.Text())); s != "" {
			w.words[s] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadWordList reads the word list at path. A missing or empty file yields
// domain.ErrNoDictionary.
func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNoDictionary)
		}
		return nil, err
	}
	defer f.Close()

	w, err := ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	if w.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNoDictionary)
	}
	return w, nil
}

// Contains reports whether word, already upper case, is in the list.
func (w *WordList) Contains(word string) bool {
	_, ok := w.words[word]
	return ok
}

// Len returns the number of distinct words.
func (w *WordList) Len() int { return len(w.words) }

// Compile-time assertion that WordList implements domain.Dictionary.
var _ domain.Dictionary = (*WordList)(nil)
