package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-e", "redis:6379",
				"-b", "redis", "-s", "secret", "-t", "30", "-r", "14",
			},
			expected: &Config{
				EndpointAddrHTTP:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				RedisAddr:                    "redis:6379",
				RefreshTokenStore:            "redis",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  30 * time.Minute,
				RefreshTokenValidityDuration: 14 * 24 * time.Hour,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-a", ":9999", "-z", "whatever"},
			expected: &Config{
				EndpointAddrHTTP: ":9999",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })

			assert.Equal(t, tt.expected.EndpointAddrHTTP, config.EndpointAddrHTTP)
			assert.Equal(t, tt.expected.DatabaseDSN, config.DatabaseDSN)
			assert.Equal(t, tt.expected.RedisAddr, config.RedisAddr)
			assert.Equal(t, tt.expected.RefreshTokenStore, config.RefreshTokenStore)
			assert.Equal(t, tt.expected.SecretKey, config.SecretKey)
			assert.Equal(t, tt.expected.AccessTokenValidityDuration, config.AccessTokenValidityDuration)
			assert.Equal(t, tt.expected.RefreshTokenValidityDuration, config.RefreshTokenValidityDuration)
		})
	}
}
