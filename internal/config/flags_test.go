package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceURL_Set tests the Set method of ServiceURL
func TestServiceURL_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "full http URL",
			input:    "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "https with path and trailing slash",
			input:    "https://api.example.com/v1/",
			expected: "https://api.example.com/v1",
		},
		{
			name:     "host and port without scheme",
			input:    "127.0.0.1:9090",
			expected: "http://127.0.0.1:9090",
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://example.com",
			expectError: true,
		},
		{
			name:        "missing host",
			input:       "http://",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u ServiceURL
			err := u.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, u.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

// TestServiceURL_Unset verifies String on an unset value.
func TestServiceURL_Unset(t *testing.T) {
	var u ServiceURL
	assert.Equal(t, "", u.String())
	assert.Equal(t, "url", u.Type())
}

// TestParseFlags_AllFlags verifies that every bound flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	require.NoError(t, fs.Parse([]string{
		"-s", "api.example.com:443",
		"--timeout", "2m",
		"--retries", "3",
		"--cache-dir", "/tmp/cache",
		"-c", "/tmp/cfg.json",
		"--log-level", "debug",
		"--log-file", "/tmp/log.json",
	}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com:443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)
	assert.Equal(t, "/tmp/cache", cfg.Storage.CacheDir)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/log.json", cfg.Logging.File)
}

// TestParseFlags_NoFlagsGiven verifies that unset flags stay zero so that
// lower priority sources can fill them.
func TestParseFlags_NoFlagsGiven(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_UnboundFlagSet verifies that a flag set without our flags is
// tolerated.
func TestParseFlags_UnboundFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("other", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBindFlags_RejectsBadURL verifies that pflag surfaces ServiceURL errors.
func TestBindFlags_RejectsBadURL(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--server", "gopher://x"}))
}
