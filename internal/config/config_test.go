package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "avatars", cfg.S3.BucketAvatars)
	assert.Equal(t, "portfolio", cfg.S3.BucketPortfolio)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server_port: \"9090\"\ntimezone: Europe/Paris\ns3:\n  bucket_photos: chantier\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TIMEZONE", "America/Montreal")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("S3_BUCKET_PHOTOS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "chantier", cfg.S3.BucketPhotos)
	assert.Equal(t, "America/Montreal", cfg.Timezone)
}

func TestValidate_ProdRejectsDefaultSecret(t *testing.T) {
	cfg := defaults()
	cfg.AppEnv = "production"

	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}
