package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "all interfaces",
			addr:     NetAddress{Host: "0.0.0.0", Port: 5000},
			expected: "0.0.0.0:5000",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "localhost", input: "localhost:5000", wantHost: "localhost", wantPort: 5000},
		{name: "ipv4", input: "0.0.0.0:5000", wantHost: "0.0.0.0", wantPort: 5000},
		{name: "empty host", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "bad host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-c", "/etc/renglo/env_config.yaml",
		"-d", "postgres://localhost/renglo",
		"-static", "/srv/dist",
		"-log-level", "warn",
		"-request-timeout", "15s",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, "/etc/renglo/env_config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "postgres://localhost/renglo", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/dist", cfg.Server.StaticDir)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nohost"})
	assert.Error(t, err)
}
