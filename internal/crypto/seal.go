package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const saltBytes = 16

// scrypt parameters; fixed so sealed files stay readable across versions.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrEnvelope is returned for data that is not a sealed envelope.
var ErrEnvelope = errors.New("not a sealed envelope")

// Envelope is the on-disk form of sealed data.
type Envelope struct {
	Sealed bool   `json:"sealed"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	CT     []byte `json:"ct"`
}

// IsSealed reports whether blob parses as a sealed envelope.
func IsSealed(blob []byte) bool {
	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return false
	}
	return env.Sealed && len(env.Salt) == saltBytes
}

// Seal encrypts plaintext under a key derived from passphrase with scrypt and
// returns the JSON envelope.
func Seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(Envelope{Sealed: true, Salt: salt, Nonce: nonce, CT: ct})
}

// Open reverses Seal.
func Open(passphrase string, blob []byte) ([]byte, error) {
	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	if !env.Sealed || len(env.Salt) != saltBytes {
		return nil, ErrEnvelope
	}
	key, err := deriveKey(passphrase, env.Salt)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrEnvelope
	}
	return aead.Open(nil, env.Nonce, env.CT, env.Salt)
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	pw := []byte(passphrase)
	defer Wipe(pw)
	return scrypt.Key(pw, salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}
