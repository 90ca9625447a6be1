package assemble_test

import (
	"math"
	"reflect"
	"testing"

	"vcrack/internal/analysis/assemble"
	"vcrack/internal/domain"
)

func cands(cols ...string) [][]domain.SubkeyCandidate {
	out := make([][]domain.SubkeyCandidate, len(cols))
	for i, col := range cols {
		for j := 0; j < len(col); j++ {
			out[i] = append(out[i], domain.SubkeyCandidate{Letter: col[j]})
		}
	}
	return out
}

func collect(c [][]domain.SubkeyCandidate) []string {
	var out []string
	for k := range assemble.Product(c) {
		out = append(out, k)
	}
	return out
}

func TestProduct_Order(t *testing.T) {
	got := collect(cands("AB", "XYZ"))
	want := []string{"AX", "AY", "AZ", "BX", "BY", "BZ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Product == %v, want %v", got, want)
	}
}

func TestProduct_Restartable(t *testing.T) {
	c := cands("AB", "C", "DE")
	first, second := collect(c), collect(c)
	if !reflect.DeepEqual(first, second) || len(first) != 4 {
		t.Fatalf("second pass %v differs from first %v", second, first)
	}
}

func TestProduct_EarlyStop(t *testing.T) {
	n := 0
	for range assemble.Product(cands("ABCDEFGHIJ", "ABCDEFGHIJ", "ABCDEFGHIJ")) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("iterated %d times, want 3", n)
	}
}

func TestProduct_Empty(t *testing.T) {
	if got := collect(nil); len(got) != 0 {
		t.Fatalf("no columns: %v", got)
	}
	if got := collect(cands("AB", "")); len(got) != 0 {
		t.Fatalf("empty column: %v", got)
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		c    [][]domain.SubkeyCandidate
		want uint64
	}{
		{nil, 0},
		{cands("AB", "XYZ"), 6},
		{cands("AB", ""), 0},
	}
	for _, c := range cases {
		if got := assemble.Size(c.c); got != c.want {
			t.Errorf("Size == %d, want %d", got, c.want)
		}
	}
	big := make([]string, 40)
	for i := range big {
		big[i] = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	}
	if got := assemble.Size(cands(big...)); got != math.MaxUint64 {
		t.Fatalf("Size of 26^40 == %d, want saturation", got)
	}
}

func keys(ks ...string) []domain.KeyCandidate {
	out := make([]domain.KeyCandidate, len(ks))
	for i, k := range ks {
		out[i] = domain.KeyCandidate{Key: k, Score: float64(i)}
	}
	return out
}

func TestDedupe(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"AB", "ABAB"}, []string{"AB"}},
		{[]string{"ABAB", "AB"}, []string{"AB"}},
		{[]string{"LEMONLEMON", "LEMON", "LEMONLEBON", "QWERTYUIOPAS"}, []string{"LEMON", "LEMONLEBON", "QWERTYUIOPAS"}},
		{[]string{"KEY", "DOG"}, []string{"KEY", "DOG"}},
	}
	for _, c := range cases {
		var got []string
		for _, k := range assemble.Dedupe(keys(c.in...)) {
			got = append(got, k.Key)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Dedupe(%v) == %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDedupe_KeepsScores(t *testing.T) {
	got := assemble.Dedupe(keys("XYZXYZXYZ", "XYZ"))
	if len(got) != 1 || got[0].Key != "XYZ" || got[0].Score != 1 {
		t.Fatalf("Dedupe == %+v", got)
	}
}
