package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLLECTIONS_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COLLECTIONS_CONFIG_PATH", dir)

	content := []byte("port: \"9090\"\ntoken_ttl: 600\nlog_level: debug\ntrusted_proxies:\n  - 10.0.0.0/8\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 600, cfg.TokenTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "default", cfg.Source("bind_address"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COLLECTIONS_CONFIG_PATH", dir)
	t.Setenv("COLLECTIONS_TOKEN_TTL", "120")

	content := []byte("token_ttl: 600\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COLLECTIONS_CONFIG_PATH", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [broken"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestAuditEnabledEnv(t *testing.T) {
	t.Setenv("COLLECTIONS_CONFIG_PATH", t.TempDir())
	t.Setenv("COLLECTIONS_AUDIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "environment", cfg.Source("audit_enabled"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CollectionsConfig)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *CollectionsConfig) {},
		},
		{
			name: "valid CIDR proxy",
			mutate: func(c *CollectionsConfig) {
				c.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.1"}
			},
		},
		{
			name: "invalid proxy",
			mutate: func(c *CollectionsConfig) {
				c.TrustedProxies = []string{"not-a-cidr"}
			},
			wantErr: true,
		},
		{
			name: "invalid token ttl",
			mutate: func(c *CollectionsConfig) {
				c.TokenTTL = 0
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			mutate: func(c *CollectionsConfig) {
				c.LogLevel = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.1"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.1"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("garbage"))

	cfg.TrustedProxies = nil
	assert.False(t, cfg.IsTrustedProxy("10.1.2.3"))
}

func TestAttributesAndFormat(t *testing.T) {
	t.Setenv("COLLECTIONS_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	attrs := cfg.Attributes()
	assert.Len(t, attrs, len(attributeNames()))

	text := cfg.FormatText()
	assert.Contains(t, text, "token_ttl")
	assert.Contains(t, text, "SOURCE")

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.Contains(t, out, "\"attributes\"")
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COLLECTIONS_CONFIG_PATH", dir)

	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("token_ttl: 600\n"), 0o644))
	require.NoError(t, Reload())

	reloaded := make(chan *CollectionsConfig, 1)
	stop, err := Watch(func(c *CollectionsConfig) {
		select {
		case reloaded <- c:
		default:
		}
	})
	require.NoError(t, err)
	defer func() { _ = stop() }()

	require.NoError(t, os.WriteFile(path, []byte("token_ttl: 900\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 900, cfg.TokenTTL)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
