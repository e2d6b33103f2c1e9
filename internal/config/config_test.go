package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3*time.Second, cfg.DBTimeout)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, "https://openlibrary.org", cfg.OpenLibraryURL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_TIMEOUT", "750ms")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 750*time.Millisecond, cfg.DBTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_MissingSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadNumber(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_MAX_RETRIES", "many")

	_, err := Load()
	assert.ErrorContains(t, err, "HTTP_MAX_RETRIES")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\nUSER_AGENT=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("USER_AGENT", "")
	require.NoError(t, os.Unsetenv("USER_AGENT"))

	LoadEnvFiles()
	t.Cleanup(func() { _ = os.Unsetenv("USER_AGENT") })

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
	assert.Equal(t, "from_file", os.Getenv("USER_AGENT"))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/books", RedactDSN("postgres://user:pw@db:5432/books"))
	assert.Equal(t, "not a url", RedactDSN("not a url"))
}
