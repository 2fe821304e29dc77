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
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/saved_address.json", cfg.AddressFile)
	assert.Equal(t, "audiomart@upi", cfg.UPIPayee)
	assert.Equal(t, "AudioMart", cfg.MerchantName)
	assert.Equal(t, 30*time.Second, cfg.ConfirmAfter)
	assert.Equal(t, 120*time.Second, cfg.DisplayWindow)
	assert.Empty(t, cfg.AdminSecret)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("port: \"9000\"\nupi_payee: store@okbank\nconfirm_after: 2s\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "store@okbank", cfg.UPIPayee)
	assert.Equal(t, 2*time.Second, cfg.ConfirmAfter)
	assert.Equal(t, 120*time.Second, cfg.DisplayWindow, "unset fields still default")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\n"), 0o644))

	t.Setenv("PORT", "7777")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Port)
}

func TestConfigFileEnvWins(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("merchant_name: EnvStore\n"), 0o644))

	t.Setenv("CONFIG_FILE", envPath)
	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "EnvStore", cfg.MerchantName)
}

func TestLoadMissingFallbackIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("CONFIRM_AFTER", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
