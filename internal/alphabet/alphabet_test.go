package alphabet_test

import (
	"reflect"
	"testing"

	"vcrack/internal/alphabet"
	"vcrack/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in      string
		letters string
		extras  []domain.Extra
	}{
		{"", "", nil},
		{"abc", "ABC", nil},
		{"Hi, you!", "HIYOU", []domain.Extra{{Index: 2, Char: ','}, {Index: 3, Char: ' '}, {Index: 7, Char: '!'}}},
		{"é1a", "A", []domain.Extra{{Index: 0, Char: 'é'}, {Index: 1, Char: '1'}}},
	}
	for _, c := range cases {
		got := alphabet.Normalize(c.in)
		if got.Letters != c.letters {
			t.Errorf("Normalize(%q).Letters == %q, want %q", c.in, got.Letters, c.letters)
		}
		if !reflect.DeepEqual(got.Layout.Extras, c.extras) {
			t.Errorf("Normalize(%q).Extras == %v, want %v", c.in, got.Layout.Extras, c.extras)
		}
		if len(got.Layout.Lower) != len(got.Letters) {
			t.Errorf("Normalize(%q): %d case flags for %d letters", c.in, len(got.Layout.Lower), len(got.Letters))
		}
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"   ",
		"Attack at dawn!",
		"  leading and trailing  ",
		"Mixed CASE, digits 123 and ünïcode.",
	}
	for _, text := range texts {
		n := alphabet.Normalize(text)
		got := alphabet.Restore(n.Letters, n.Layout, alphabet.Options{KeepExtra: true, KeepCase: true})
		if got != text {
			t.Errorf("Restore(Normalize(%q)) == %q", text, got)
		}
	}
}

func TestRestore_Options(t *testing.T) {
	n := alphabet.Normalize("Hello, World")
	cases := []struct {
		opts alphabet.Options
		want string
	}{
		{alphabet.Options{}, "HELLOWORLD"},
		{alphabet.Options{KeepExtra: true}, "HELLO, WORLD"},
		{alphabet.Options{KeepCase: true}, "HelloWorld"},
	}
	for _, c := range cases {
		if got := alphabet.Restore(n.Letters, n.Layout, c.opts); got != c.want {
			t.Errorf("Restore(%+v) == %q, want %q", c.opts, got, c.want)
		}
	}
}

func TestRestore_DifferentLetters(t *testing.T) {
	n := alphabet.Normalize("ab cd.")
	got := alphabet.Restore("WXYZ", n.Layout, alphabet.Options{KeepExtra: true, KeepCase: true})
	if got != "wx yz." {
		t.Fatalf("got %q, want %q", got, "wx yz.")
	}
}
