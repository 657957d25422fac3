package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Name    string        `env:"SAMPLE_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"SAMPLE_TIMEOUT" envDefault:"3s"`
	Secret  string        `env:"SAMPLE_SECRET,required"`
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SAMPLE_SECRET", "s3cret")
	t.Setenv("SAMPLE_TIMEOUT", "10s")

	var cfg sampleConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestParseEnv_MissingRequired(t *testing.T) {
	t.Setenv("SAMPLE_SECRET", "")
	require.NoError(t, os.Unsetenv("SAMPLE_SECRET"))

	var cfg sampleConfig
	err := ParseEnv(&cfg)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_ONLY_KEY=from-file\n"), 0o600))
	t.Setenv("DOTENV_ONLY_KEY", "")
	require.NoError(t, os.Unsetenv("DOTENV_ONLY_KEY"))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_ONLY_KEY") })

	assert.Equal(t, "from-file", os.Getenv("DOTENV_ONLY_KEY"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}
