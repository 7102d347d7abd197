// Package sshkey generates ed25519 key pairs and renders them in the
// OpenSSH public-line and private-container formats.
package sshkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
)

// KeyType is the algorithm tag used in both encodings.
const KeyType = "ssh-ed25519"

const (
	// SeedSize is the length of the secret seed.
	SeedSize = 32
	// PublicKeySize is the length of the derived public key.
	PublicKeySize = 32
)

// ErrKeyLength reports key material of unexpected size coming out of the
// generation primitive. It is never recoverable.
var ErrKeyLength = errors.New("sshkey: key material has unexpected length")

// KeyPair holds one candidate: the 32-byte seed and the public key derived
// from it. The two halves always travel together.
type KeyPair struct {
	Seed   []byte
	Public ed25519.PublicKey
}

// Generate produces a fresh random key pair from the OS entropy source.
func Generate() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	pair := KeyPair{Seed: priv.Seed(), Public: pub}
	if err := pair.validate(); err != nil {
		return KeyPair{}, err
	}
	return pair, nil
}

// PrivateKey reassembles the full ed25519 private key, seed followed by the
// public half.
func (p KeyPair) PrivateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(p.Seed)
}

func (p KeyPair) validate() error {
	if len(p.Seed) != SeedSize || len(p.Public) != PublicKeySize {
		return fmt.Errorf("%w: seed=%d public=%d", ErrKeyLength, len(p.Seed), len(p.Public))
	}
	return nil
}
