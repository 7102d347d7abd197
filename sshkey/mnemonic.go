package sshkey

import (
	"github.com/tyler-smith/go-bip39"
)

// SeedMnemonic encodes the 32-byte seed as a 24-word BIP-39 phrase, usable
// as an offline backup. The seed comes back out byte-for-byte via
// bip39.EntropyFromMnemonic.
func SeedMnemonic(pair KeyPair) (string, error) {
	if err := pair.validate(); err != nil {
		return "", err
	}
	return bip39.NewMnemonic(pair.Seed)
}
