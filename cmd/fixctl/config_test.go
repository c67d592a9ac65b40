package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/go-fix/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadClientConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := loadClientConfig(writeConfig(t, `
host = "fix.example.com"
port = 4199
key = "K1"
passphrase = "P1"
secret = "czNjcjN0"
begin_string = "FIX.4.2"
target_comp_id = "Coinbase"
heartbeat = "10s"
log_level = "debug"
dictionary = "dict.toml"
`))
	require.NoError(err)

	require.Equal("fix.example.com", cfg.host)
	require.Equal(4199, cfg.port)
	require.Equal("K1", cfg.creds.Key)
	require.Equal("P1", cfg.creds.Passphrase)
	require.Equal("czNjcjN0", cfg.creds.Secret)
	require.Equal("FIX.4.2", cfg.beginString)
	require.Equal("Coinbase", cfg.targetCompID)
	require.Equal(10*time.Second, cfg.heartbeat)
	require.Equal(logger.DebugLevel, cfg.logLevel)
	require.Equal("dict.toml", cfg.dictionaryPath)
}

func TestLoadClientConfig_Defaults(t *testing.T) {
	require := require.New(t)

	cfg, err := loadClientConfig(writeConfig(t, `
host = "fix.example.com"
key = "K1"
passphrase = "P1"
secret = "czNjcjN0"
`))
	require.NoError(err)

	require.Equal(4198, cfg.port)
	require.Equal(30*time.Second, cfg.heartbeat)
	require.Equal(logger.InfoLevel, cfg.logLevel)
	require.Empty(cfg.beginString)
	require.Empty(cfg.dictionaryPath)
}

func TestLoadClientConfig_Invalid(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		description string
		content     string
	}{
		{description: "missing host", content: `
key = "K1"
passphrase = "P1"
secret = "czNjcjN0"
`},
		{description: "missing credentials", content: `
host = "fix.example.com"
`},
		{description: "bad heartbeat", content: `
host = "fix.example.com"
key = "K1"
passphrase = "P1"
secret = "czNjcjN0"
heartbeat = "soon"
`},
		{description: "bad log level", content: `
host = "fix.example.com"
key = "K1"
passphrase = "P1"
secret = "czNjcjN0"
log_level = "loud"
`},
	}

	for _, test := range tests {
		_, err := loadClientConfig(writeConfig(t, test.content))
		require.Error(err, test.description)
	}
}

func TestParseLogLevel(t *testing.T) {
	require := require.New(t)

	level, err := parseLogLevel("warn")
	require.NoError(err)
	require.Equal(logger.WarnLevel, level)

	level, err = parseLogLevel("")
	require.NoError(err)
	require.Equal(logger.InfoLevel, level)

	_, err = parseLogLevel("loud")
	require.Error(err)
}
