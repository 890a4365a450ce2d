package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shopradar/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "shopradar"

	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Database)
	assert.False(t, cfg.Database.AutoMigrate)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "shopradar", cfg.Auth.Issuer)

	require.NotNil(t, cfg.Search)
	assert.Equal(t, constants.SearchEngineScan, cfg.Search.Engine)
	assert.InDelta(t, 5.0, cfg.Search.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 1.0, cfg.Search.GridCellSizeKm, 1e-9)
	require.NotNil(t, cfg.Search.Elastic)
	assert.Equal(t, "shops", cfg.Search.Elastic.Index)
	assert.Equal(t, 1000, cfg.Search.Elastic.PageSize)

	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	require.NotNil(t, cfg.Worker)
	assert.False(t, cfg.Worker.Enabled)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, "/push", cfg.Worker.PushPath)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour, Issuer: "issuer"},
		Search: &SearchConfig{Engine: constants.SearchEngineGrid, DefaultRadiusKm: 2.5, GridCellSizeKm: 0.5},
	}

	cfg.ApplyDefaults()

	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "issuer", cfg.Auth.Issuer)
	assert.Equal(t, constants.SearchEngineGrid, cfg.Search.Engine)
	assert.InDelta(t, 2.5, cfg.Search.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 0.5, cfg.Search.GridCellSizeKm, 1e-9)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHOPRADAR_DOTENV_TEST=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SHOPRADAR_DOTENV_TEST") })

	err := loadDotEnv(filepath.Join(dir, "missing.env"), envFile)

	require.NoError(t, err)
	assert.Equal(t, "loaded", os.Getenv("SHOPRADAR_DOTENV_TEST"))
}

func TestLoadDotEnv_MissingFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()

	err := loadDotEnv(filepath.Join(dir, "a.env"), filepath.Join(dir, "b.env"))

	assert.NoError(t, err)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "search:\n  engine: scan\n  defaultRadiusKm: 7.5\nsecretKey:\n  access: from-yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shopradar-test.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("SEARCH_ENGINE", "grid")
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("shopradar-test", rel)
	require.NoError(t, err)

	require.NotNil(t, cfg.Search)
	assert.Equal(t, "grid", cfg.Search.Engine)
	assert.InDelta(t, 7.5, cfg.Search.DefaultRadiusKm, 1e-9)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
}
