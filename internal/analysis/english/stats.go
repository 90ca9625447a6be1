package english

import (
	"sort"
	"strings"
)

// Frequencies are relative single-letter frequencies of English, A..Z.
// Source: https://en.wikipedia.org/wiki/Letter_frequency
var Frequencies = [26]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.0236, 0.0015, 0.01974, 0.00074, // V-Z
}

// Order is the canonical letter order, most frequent first.
const Order = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

const (
	mostFrequent  = "ETAOIN"
	leastFrequent = "VKJXQZ"
)

// IC is the expected index of coincidence of English text, normalised so
// that uniformly random text scores 1.0.
var IC = func() float64 {
	var sum float64
	for _, f := range Frequencies {
		sum += f * f
	}
	return sum * 26
}()

// orderIndex maps A..Z to its position in Order.
var orderIndex = func() [26]int {
	var idx [26]int
	for i := 0; i < len(Order); i++ {
		idx[Order[i]-'A'] = i
	}
	return idx
}()

// Counts tallies the letters A..Z in text; other bytes are ignored.
func Counts(text string) (counts [26]int, n int) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			counts[c-'A']++
			n++
		}
	}
	return counts, n
}

// IndexOfCoincidence returns Σ c_i(c_i-1) / (N(N-1)/26) for uppercase text.
// Texts of one letter or less score 26.
func IndexOfCoincidence(text string) float64 {
	counts, n := Counts(text)
	if n <= 1 {
		return 26
	}
	var sum float64
	for _, c := range counts {
		sum += float64(c * (c - 1))
	}
	return sum / (float64(n) * float64(n-1) / 26)
}

// Correlation returns the dot product of the letter distribution of text
// with Frequencies. Empty text correlates 0.
func Correlation(text string) float64 {
	counts, n := Counts(text)
	if n == 0 {
		return 0
	}
	var sum float64
	for i, c := range counts {
		sum += float64(c) / float64(n) * Frequencies[i]
	}
	return sum
}

// Ranking orders all 26 letters by their count in text, most frequent first.
// Letters with equal counts, including absent ones, are ordered by reverse
// position in Order, so a tie never flatters the text.
func Ranking(text string) [26]byte {
	counts, _ := Counts(text)
	var letters [26]byte
	for i := range letters {
		letters[i] = byte('A' + i)
	}
	sort.SliceStable(letters[:], func(i, j int) bool {
		a, b := letters[i]-'A', letters[j]-'A'
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return orderIndex[a] > orderIndex[b]
	})
	return letters
}

// MatchScore counts how many of ETAOIN rank in the top six letters of text
// plus how many of VKJXQZ rank in the bottom six. The result is 0..12.
func MatchScore(text string) int {
	r := Ranking(text)
	score := 0
	for _, c := range r[:6] {
		if strings.IndexByte(mostFrequent, c) >= 0 {
			score++
		}
	}
	for _, c := range r[20:] {
		if strings.IndexByte(leastFrequent, c) >= 0 {
			score++
		}
	}
	return score
}
