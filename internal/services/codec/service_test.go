package codec_test

import (
	"errors"
	"testing"

	"vcrack/internal/alphabet"
	"vcrack/internal/domain"
	"vcrack/internal/services/codec"
)

func TestEncryptDecrypt_KeepExtra(t *testing.T) {
	svc := codec.New(alphabet.Options{KeepExtra: true})
	ct, err := svc.Encrypt("Attack at dawn!", "lemon")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if ct != "LXFOPV EF RNHR!" {
		t.Fatalf("Encrypt == %q", ct)
	}
	pt, err := svc.Decrypt(ct, "LEMON")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if pt != "ATTACK AT DAWN!" {
		t.Fatalf("Decrypt == %q", pt)
	}
}

func TestEncryptDecrypt_Options(t *testing.T) {
	cases := []struct {
		opts alphabet.Options
		want string
	}{
		{alphabet.Options{}, "LXFOPVEFRNHR"},
		{alphabet.Options{KeepCase: true}, "LxfopvefRnhr"},
		{alphabet.Options{KeepExtra: true, KeepCase: true}, "Lxfopv ef Rnhr."},
	}
	for _, c := range cases {
		got, err := codec.New(c.opts).Encrypt("Attack at Dawn.", "LEMON")
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("Encrypt with %+v == %q, want %q", c.opts, got, c.want)
		}
	}
}

func TestRoundTrip_LettersOnly(t *testing.T) {
	svc := codec.New(alphabet.Options{})
	plain := "The quick brown fox, 1999 edition; jumps over the lazy dog."
	for _, key := range []string{"A", "KEY", "Vigenère!", "LEMON"} {
		ct, err := svc.Encrypt(plain, key)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", key, err)
		}
		pt, err := svc.Decrypt(ct, key)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", key, err)
		}
		if want := alphabet.LettersOnly(plain); pt != want {
			t.Errorf("key %q: round trip == %q, want %q", key, pt, want)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	svc := codec.New(alphabet.Options{KeepExtra: true})
	if _, err := svc.Encrypt("hello", "1234"); !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("Encrypt err == %v, want ErrInvalidKey", err)
	}
	if _, err := svc.Decrypt("hello", ""); !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("Decrypt err == %v, want ErrInvalidKey", err)
	}
}
