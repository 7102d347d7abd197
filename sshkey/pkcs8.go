package sshkey

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// EncodePKCS8 renders the private key as a PKCS#8 PEM block, for tools that
// do not read the OpenSSH container.
func EncodePKCS8(pair KeyPair) (string, error) {
	if err := pair.validate(); err != nil {
		return "", err
	}
	der, err := x509.MarshalPKCS8PrivateKey(pair.PrivateKey())
	if err != nil {
		return "", fmt.Errorf("marshal pkcs8: %w", err)
	}
	block := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}
	return string(pem.EncodeToMemory(block)), nil
}
