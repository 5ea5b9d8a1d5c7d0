package core

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Empty(t, config.BaseURL)
	assert.False(t, config.Sandbox)
	assert.Nil(t, config.Credentials)
	assert.Zero(t, config.Timeout)
	assert.Zero(t, config.RecvWindow)
	assert.Equal(t, "info", config.LogLevel)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid_config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "valid_base_url",
			config:  DefaultConfig().WithBaseURL("http://127.0.0.1:8080"),
			wantErr: false,
		},
		{
			name:    "invalid_base_url",
			config:  DefaultConfig().WithBaseURL("not a url"),
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name:    "negative_timeout",
			config:  DefaultConfig().WithTimeout(-1 * time.Second),
			wantErr: true,
			errMsg:  "Timeout",
		},
		{
			name:    "recv_window_too_large",
			config:  DefaultConfig().WithRecvWindow(2 * time.Minute),
			wantErr: true,
			errMsg:  "RecvWindow",
		},
		{
			name:    "invalid_log_level",
			config:  &Config{LogLevel: "trace"},
			wantErr: true,
			errMsg:  "LogLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.errMsg), "expected error to contain %q, got %q", tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_URL(t *testing.T) {
	assert.Equal(t, "https://fapi.binance.com", DefaultConfig().URL())
	assert.Equal(t, "https://testnet.binancefuture.com", DefaultConfig().WithSandbox(true).URL())
	assert.Equal(t, "http://localhost:1", DefaultConfig().WithSandbox(true).WithBaseURL("http://localhost:1").URL())
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			config := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, config.Level())
		})
	}
}

func TestConfig_WithCredentials(t *testing.T) {
	config := DefaultConfig()
	creds := &Credentials{
		APIKey:    "test-key",
		SecretKey: "test-secret",
	}

	result := config.WithCredentials(creds)

	assert.Equal(t, config, result)
	assert.Equal(t, creds, config.Credentials)
}

func TestConfig_WithSandbox(t *testing.T) {
	config := DefaultConfig()
	result := config.WithSandbox(true)

	assert.Equal(t, config, result)
	assert.True(t, config.Sandbox)
}

func TestConfig_WithTimeout(t *testing.T) {
	config := DefaultConfig()
	result := config.WithTimeout(30 * time.Second)

	assert.Equal(t, config, result)
	assert.Equal(t, 30*time.Second, config.Timeout)
}

func TestConfig_WithRecvWindow(t *testing.T) {
	config := DefaultConfig()
	result := config.WithRecvWindow(5 * time.Second)

	assert.Equal(t, config, result)
	assert.Equal(t, 5*time.Second, config.RecvWindow)
}
