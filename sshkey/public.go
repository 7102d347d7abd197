package sshkey

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
)

// Every field in the SSH wire format carries a big-endian uint32 length
// prefix.

func writeBytes(buf *bytes.Buffer, b []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	buf.Write(l[:])
	buf.Write(b)
}

func writeString(buf *bytes.Buffer, s string) {
	writeBytes(buf, []byte(s))
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// publicBlob is the wire form of the public key: the algorithm tag and the
// raw key, each length-prefixed. The same bytes appear in the public line
// and inside the private container.
func publicBlob(pub ed25519.PublicKey) []byte {
	var buf bytes.Buffer
	writeString(&buf, KeyType)
	writeBytes(&buf, pub)
	return buf.Bytes()
}

// PublicBody returns the base64 body of the public key line. This is the
// text a vanity pattern is matched against.
func PublicBody(pub ed25519.PublicKey) string {
	return base64.StdEncoding.EncodeToString(publicBlob(pub))
}

// EncodePublic renders the single-line authorized_keys form. An empty
// comment is omitted entirely, matching ssh-keygen output.
func EncodePublic(pub ed25519.PublicKey, comment string) string {
	if comment == "" {
		return KeyType + " " + PublicBody(pub)
	}
	return KeyType + " " + PublicBody(pub) + " " + comment
}
