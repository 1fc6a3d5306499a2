package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ADMINPANEL_DB_DSN", "user:pass@tcp(localhost:3306)/adminpanel")
	t.Setenv("ADMINPANEL_JWT_SECRET", "secret")
}

func Test_Load_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.OtelEndpoint)
}

func Test_Load_RequiresSecrets(t *testing.T) {
	t.Setenv("ADMINPANEL_DB_DSN", "")
	t.Setenv("ADMINPANEL_JWT_SECRET", "")
	os.Unsetenv("ADMINPANEL_DB_DSN")
	os.Unsetenv("ADMINPANEL_JWT_SECRET")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func Test_Load_ReadsDotEnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMINPANEL_S3_BUCKET", "")
	os.Unsetenv("ADMINPANEL_S3_BUCKET")
	t.Setenv("ADMINPANEL_HTTP_ADDR", ":9000")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMINPANEL_S3_BUCKET=receipts\nADMINPANEL_HTTP_ADDR=:7000\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ADMINPANEL_S3_BUCKET") })

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "receipts", cfg.S3().Bucket)
	assert.Equal(t, ":9000", cfg.HTTPAddr, "existing variables win over the file")
}

func Test_Load_InvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMINPANEL_REQUEST_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func Test_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.Level())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: " WARN "}.Level())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.Level())
}
