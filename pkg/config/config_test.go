package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "STATIC_DIR", "CONFIRMATION_TTL", "CORS_ALLOWED_ORIGINS",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.Landing.ConfirmationTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CONFIRMATION_TTL", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://sakha.in, ,https://www.sakha.in")
	t.Setenv("STATIC_DIR", "/srv/static")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.Landing.ConfirmationTTL)
	assert.Equal(t, []string{"https://sakha.in", "https://www.sakha.in"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/srv/static", cfg.Landing.StaticDir)
}

func TestLoadConfig_UnparsableFallsBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("CONFIRMATION_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultConfirmationTTL, cfg.Landing.ConfirmationTTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "")
	t.Setenv("CONFIRMATION_TTL", "-1s")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadDotEnvUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("SAKHA_DOTENV_PROBE=found\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SAKHA_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("SAKHA_DOTENV_PROBE"))

	loaded := LoadDotEnvUp(4)
	assert.Equal(t, ".env", filepath.Base(loaded))
	assert.Equal(t, "found", os.Getenv("SAKHA_DOTENV_PROBE"))
}
