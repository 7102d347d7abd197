package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vanityssh.yaml")
	data := `
pattern: "^AAAA"
threads: 8
streaming: true
case_sensitive: true
comment: laptop@home
output: keys.txt
mnemonic: true
metrics: ":9101"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "^AAAA", cfg.Pattern)
	assert.Equal(t, 8, cfg.Threads)
	assert.True(t, cfg.Streaming)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, "laptop@home", cfg.Comment)
	assert.Equal(t, "keys.txt", cfg.Output)
	assert.True(t, cfg.Mnemonic)
	assert.Equal(t, ":9101", cfg.MetricsAddr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: [unterminated"), 0600))
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestMergeFlagsWin(t *testing.T) {
	cfg := Config{Pattern: "fromfile", Threads: 8, Comment: "file@host"}
	flags := Config{Pattern: "fromflag", Threads: 2, Comment: "flag@host"}

	cfg.merge(flags, map[string]bool{"pattern": true, "threads": true})

	assert.Equal(t, "fromflag", cfg.Pattern)
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, "file@host", cfg.Comment, "unset flags keep the file value")
}
