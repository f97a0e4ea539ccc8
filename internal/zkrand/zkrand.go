// Package zkrand supplies the field.RandSource the ZK-padding gadget
// draws from. Two constructors are provided: New for production use
// (seeded from crypto/rand), and NewSeeded for tests that need
// byte-for-byte reproducible padding.
package zkrand

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Source wraps a chacha20 keystream as an io.Reader, satisfying
// field.RandSource without importing the field package (keeping this a
// leaf dependency).
type Source struct {
	cipher *chacha20.Cipher
}

// New returns a Source seeded from the operating system's CSPRNG.
func New() (*Source, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return newFromKeyNonce(key, nonce)
}

// NewSeeded returns a Source deterministically derived from seed, for
// tests that need the same padding rows across repeated runs.
func NewSeeded(seed uint64) (*Source, error) {
	var key [chacha20.KeySize]byte
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}
	var nonce [chacha20.NonceSize]byte
	return newFromKeyNonce(key, nonce)
}

func newFromKeyNonce(key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte) (*Source, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &Source{cipher: c}, nil
}

// Read fills p with keystream bytes, implementing field.RandSource.
func (s *Source) Read(p []byte) (int, error) {
	zero := make([]byte, len(p))
	s.cipher.XORKeyStream(p, zero)
	return len(p), nil
}
