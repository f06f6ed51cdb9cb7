// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"adapter": {"http_address": "http://json.local/api", "request_timeout": "20s"},
		"storage": {"db": {"dsn": "json.db"}},
		"log": {"file": "json.log", "level": "error"}
	}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "http://json.local/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
adapter:
  http_address: http://yaml.local/api
  request_timeout: 1m
storage:
  db:
    dsn: yaml.db
log:
  level: debug
`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "http://yaml.local/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "yaml.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeTempConfig(t, "config.toml", "a = 1") },
			wantErr: ErrUnsupportedConfigFile,
		},
		{
			name: "broken json",
			path: func(t *testing.T) string { return writeTempConfig(t, "config.json", "{") },
		},
		{
			name: "bad duration",
			path: func(t *testing.T) string {
				return writeTempConfig(t, "config.yml", "adapter:\n  request_timeout: whenever\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(tt.path(t))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, Duration(time.Microsecond), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`"nope"`)))
}
