package sshkey

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestPublicBodyDeterministic(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)

	body := PublicBody(pair.Public)
	assert.Equal(t, body, PublicBody(pair.Public))

	// wire form: u32 len + "ssh-ed25519" + u32 len + 32 key bytes
	decoded, err := base64.StdEncoding.DecodeString(body)
	require.NoError(t, err)
	require.Len(t, decoded, 4+11+4+32)
	assert.Equal(t, []byte{0, 0, 0, 11}, decoded[:4])
	assert.Equal(t, "ssh-ed25519", string(decoded[4:15]))
	assert.Equal(t, []byte{0, 0, 0, 32}, decoded[15:19])
	assert.Equal(t, []byte(pair.Public), decoded[19:])
}

func TestEncodePublicComment(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)
	body := PublicBody(pair.Public)

	withComment := EncodePublic(pair.Public, "test@example.com")
	assert.Equal(t, "ssh-ed25519 "+body+" test@example.com", withComment)

	// empty comment is omitted, no trailing space
	bare := EncodePublic(pair.Public, "")
	assert.Equal(t, "ssh-ed25519 "+body, bare)
	assert.Len(t, strings.Fields(bare), 2)
}

func TestEncodePublicParsesAsAuthorizedKey(t *testing.T) {
	pair, err := Generate()
	require.NoError(t, err)

	line := EncodePublic(pair.Public, "worker@host")
	parsed, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519", parsed.Type())
	assert.Equal(t, "worker@host", comment)

	decoded, err := base64.StdEncoding.DecodeString(PublicBody(pair.Public))
	require.NoError(t, err)
	assert.Equal(t, decoded, parsed.Marshal())
}
