package codec

import (
	"vcrack/internal/alphabet"
	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

// Service transforms text with an explicit key.
type Service struct {
	opts alphabet.Options
}

// New returns a codec that lays out its output per opts.
func New(opts alphabet.Options) *Service { return &Service{opts: opts} }

// Encrypt enciphers the letters of text with key.
func (s *Service) Encrypt(text, key string) (string, error) {
	return s.transform(text, key, crypto.Encrypt)
}

// Decrypt deciphers the letters of text with key.
func (s *Service) Decrypt(text, key string) (string, error) {
	return s.transform(text, key, crypto.Decrypt)
}

func (s *Service) transform(text, key string, f func(string, crypto.Key) string) (string, error) {
	k, err := crypto.ParseKey(key)
	if err != nil {
		return "", err
	}
	n := alphabet.Normalize(text)
	return alphabet.Restore(f(n.Letters, k), n.Layout, s.opts), nil
}

// Compile-time assertion that Service implements domain.CodecService.
var _ domain.CodecService = (*Service)(nil)
