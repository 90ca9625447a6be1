package crypto_test

import (
	"errors"
	"math/rand"
	"testing"

	"vcrack/internal/alphabet"
	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

func TestEncrypt_KnownVector(t *testing.T) {
	got := crypto.Encrypt("ATTACKATDAWN", "LEMON")
	if got != "LXFOPVEFRNHR" {
		t.Fatalf("Encrypt == %q, want %q", got, "LXFOPVEFRNHR")
	}
	if back := crypto.Decrypt(got, "LEMON"); back != "ATTACKATDAWN" {
		t.Fatalf("Decrypt == %q, want %q", back, "ATTACKATDAWN")
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		raw  string
		want crypto.Key
		err  error
	}{
		{"lemon", "LEMON", nil},
		{" Le-Mon 42", "LEMON", nil},
		{"", "", domain.ErrInvalidKey},
		{"1234 !?", "", domain.ErrInvalidKey},
	}
	for _, c := range cases {
		got, err := crypto.ParseKey(c.raw)
		if !errors.Is(err, c.err) {
			t.Errorf("ParseKey(%q) err == %v, want %v", c.raw, err, c.err)
		}
		if got != c.want {
			t.Errorf("ParseKey(%q) == %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		plain := randomText(rng, rng.Intn(200))
		key, err := crypto.ParseKey(randomText(rng, 1+rng.Intn(12)) + "K")
		if err != nil {
			t.Fatalf("ParseKey: %v", err)
		}
		letters := alphabet.LettersOnly(plain)
		got := crypto.Decrypt(crypto.Encrypt(letters, key), key)
		if got != letters {
			t.Fatalf("round trip with key %q: got %q, want %q", key, got, letters)
		}
	}
}

func TestDecryptLetter(t *testing.T) {
	if got := crypto.DecryptLetter("DEF", 'D'); got != "ABC" {
		t.Fatalf("DecryptLetter == %q, want ABC", got)
	}
}

func randomText(rng *rand.Rand, n int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ ,.!0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rng.Intn(len(chars))]
	}
	return string(b)
}
