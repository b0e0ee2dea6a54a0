package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("EMAIL", "owner@example.com")
	t.Setenv("EMAIL_PASS2", "app-password")
	t.Setenv("KEY", "recaptcha-secret")
}

func TestLoadFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("HOST", "")
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.Email.Address)
	assert.Equal(t, "app-password", cfg.Email.Password)
	assert.Equal(t, "recaptcha-secret", cfg.Recaptcha.Secret)
	assert.Equal(t, 8081, cfg.HTTPServer.Port)
	assert.Equal(t, ":8081", cfg.HTTPServer.ListenAddress())
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))
	t.Setenv("RECAPTCHA_VERIFY_URL", "")
	require.NoError(t, os.Unsetenv("RECAPTCHA_VERIFY_URL"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.HTTPServer.Port)
	assert.Equal(t, ":5000", cfg.HTTPServer.ListenAddress())

	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Empty(t, cfg.Recaptcha.VerifyURL)
	assert.False(t, cfg.Recaptcha.VerifyOnSend)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.RequestTimeout)
	assert.Equal(t, "http://thathichirag.xyz", cfg.RedirectURL)
}

func TestLoadMissingSecret(t *testing.T) {
	setRequired(t)
	require.NoError(t, os.Unsetenv("KEY"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	setRequired(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("env: prod\nemail:\n  smtp_host: mail.example.com\n  smtp_port: 2525\nrecaptcha:\n  verify_on_send: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "mail.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.True(t, cfg.Recaptcha.VerifyOnSend)
	assert.Equal(t, "owner@example.com", cfg.Email.Address)
}

func TestLoadMissingFile(t *testing.T) {
	setRequired(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}
