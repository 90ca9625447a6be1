package columns_test

import (
	"reflect"
	"strings"
	"testing"

	"vcrack/internal/analysis/columns"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		text   string
		length int
		want   []string
	}{
		{"", 3, []string{"", "", ""}},
		{"ABCDEFG", 1, []string{"ABCDEFG"}},
		{"ABCDEFG", 3, []string{"ADG", "BE", "CF"}},
		{"AB", 5, []string{"A", "B", "", "", ""}},
	}
	for _, c := range cases {
		got := columns.Split(c.text, c.length)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Split(%q, %d) == %q, want %q", c.text, c.length, got, c.want)
		}
	}
}

func TestSplit_Partition(t *testing.T) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 3)
	for length := 1; length <= 40; length++ {
		cols := columns.Split(text, length)
		total := 0
		for _, c := range cols {
			total += len(c)
		}
		if total != len(text) {
			t.Fatalf("length %d: %d letters in columns, want %d", length, total, len(text))
		}
		if got := columns.Interleave(cols); got != text {
			t.Fatalf("length %d: Interleave == %q, want %q", length, got, text)
		}
	}
}

func TestSplit_ZeroLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for length 0")
		}
	}()
	columns.Split("ABC", 0)
}
