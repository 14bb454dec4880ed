package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "ROLE_ENCODING", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "name", cfg.RoleEncoding)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ROLE_ENCODING", "code")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := LoadConfig()

	assert.Equal(t, "code", cfg.RoleEncoding)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_DotEnvInDev(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROLE_ENCODING=code\n"), 0o600)
	assert.NoError(t, err)
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("ENV", "dev")
	t.Setenv("ROLE_ENCODING", "")
	os.Unsetenv("ROLE_ENCODING")

	cfg := LoadConfig()

	assert.Equal(t, "code", cfg.RoleEncoding)
}
