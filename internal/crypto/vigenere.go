package crypto

import (
	"vcrack/internal/alphabet"
	"vcrack/internal/domain"
)

// Key is a parsed Vigenère key: uppercase letters only, never empty.
type Key string

// ParseKey strips non-letters from raw and upper-cases the rest.
func ParseKey(raw string) (Key, error) {
	k := alphabet.LettersOnly(raw)
	if k == "" {
		return "", domain.ErrInvalidKey
	}
	return Key(k), nil
}

// Shift encrypts one uppercase letter c with key letter k.
func Shift(c, k byte) byte {
	return 'A' + (c-'A'+k-'A')%26
}

// Unshift decrypts one uppercase letter c with key letter k.
func Unshift(c, k byte) byte {
	return 'A' + (c-'A'+26-(k-'A'))%26
}

// Encrypt enciphers uppercase letters with key, cycling the key.
func Encrypt(letters string, key Key) string {
	return apply(letters, key, Shift)
}

// Decrypt deciphers uppercase letters with key, cycling the key.
func Decrypt(letters string, key Key) string {
	return apply(letters, key, Unshift)
}

// DecryptLetter deciphers letters with the single key letter k.
func DecryptLetter(letters string, k byte) string {
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[i] = Unshift(letters[i], k)
	}
	return string(out)
}

func apply(letters string, key Key, f func(c, k byte) byte) string {
	if len(key) == 0 {
		return letters
	}
	out := make([]byte, len(letters))
	j := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			out[i] = c
			continue
		}
		out[i] = f(c, key[j%len(key)])
		j++
	}
	return string(out)
}
