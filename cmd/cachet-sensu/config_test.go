package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cachet.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://status.domain.tld/api/v1
api_token: secret-token
uchiwa: http://uchiwa.tld
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://status.domain.tld/api/v1", cfg.Endpoint)
	assert.Equal(t, "secret-token", cfg.APIToken)
	assert.Equal(t, "http://uchiwa.tld", cfg.Uchiwa)
}

// Legacy installs shipped JSON config files; YAML parses them unchanged.
func TestLoadConfigJSONCompatibility(t *testing.T) {
	path := writeConfig(t, `{
  "endpoint": "http://status.domain.tld/api/v1",
  "api_token": "secret-token",
  "uchiwa": "http://uchiwa.tld"
}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://status.domain.tld/api/v1", cfg.Endpoint)
}

func TestLoadConfigMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantKey string
	}{
		{
			name:    "missing endpoint",
			content: "api_token: t\nuchiwa: http://uchiwa.tld\n",
			wantKey: "endpoint",
		},
		{
			name:    "missing api_token",
			content: "endpoint: http://status/api/v1\nuchiwa: http://uchiwa.tld\n",
			wantKey: "api_token",
		},
		{
			name:    "missing uchiwa",
			content: "endpoint: http://status/api/v1\napi_token: t\n",
			wantKey: "uchiwa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read configuration file")
}
