package subkey_test

import (
	"os"
	"testing"

	"vcrack/internal/alphabet"
	"vcrack/internal/analysis/columns"
	"vcrack/internal/analysis/subkey"
	"vcrack/internal/crypto"
)

func passageLetters(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("../../../testdata/passage.txt")
	if err != nil {
		t.Fatalf("read passage: %v", err)
	}
	return alphabet.LettersOnly(string(b))
}

func TestCorrelation_RecoversCaesarShift(t *testing.T) {
	plain := passageLetters(t)
	for s := 0; s < 26; s++ {
		k := byte('A' + s)
		column := crypto.Encrypt(plain, crypto.Key(string(k)))
		got := subkey.Best(column)
		if got.Letter != k {
			t.Errorf("shift %d: Best == %c, want %c", s, got.Letter, k)
		}
	}
}

func TestCorrelation_ExactlyOne(t *testing.T) {
	if got := (subkey.Correlation{}).Candidates("", 7); len(got) != 1 || got[0].Letter != 'A' {
		t.Fatalf("Candidates(\"\") == %+v, want single A", got)
	}
}

func TestFrequencyRank_Width(t *testing.T) {
	col := crypto.Encrypt(passageLetters(t), "Q")
	cases := []struct {
		solver    subkey.FrequencyRank
		keyLength int
		want      int
	}{
		{subkey.FrequencyRank{}, 5, 5},
		{subkey.FrequencyRank{}, 0, 1},
		{subkey.FrequencyRank{}, 40, 26},
		{subkey.FrequencyRank{Width: 3}, 5, 3},
	}
	for _, c := range cases {
		if got := c.solver.Candidates(col, c.keyLength); len(got) != c.want {
			t.Errorf("%+v.Candidates(_, %d) returned %d, want %d", c.solver, c.keyLength, len(got), c.want)
		}
	}
}

func TestFrequencyRank_TrueLetterFirst(t *testing.T) {
	cols := columns.Split(crypto.Encrypt(passageLetters(t), "LEMON"), 5)
	for i, col := range cols {
		got := (subkey.FrequencyRank{}).Candidates(col, 5)
		if got[0].Letter != "LEMON"[i] {
			t.Errorf("column %d: best %c, want %c (%+v)", i, got[0].Letter, "LEMON"[i], got)
		}
		for j := 1; j < len(got); j++ {
			if got[j].Score > got[j-1].Score {
				t.Errorf("column %d: candidates not sorted: %+v", i, got)
			}
		}
	}
}

func TestScores_Range(t *testing.T) {
	for _, c := range subkey.Scores("HELLOWORLD") {
		if c.Score < 0 || c.Score > 12 {
			t.Fatalf("score %v out of range for %c", c.Score, c.Letter)
		}
	}
}
