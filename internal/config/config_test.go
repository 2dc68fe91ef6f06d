package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// chdir moves into a fresh directory so a stray .env is never picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv(APIEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 9, cfg.Backend.PageSize)
	assert.Equal(t, 6, cfg.Backend.ShopProductsPageSize)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Retry.IntervalSeconds)
	assert.Equal(t, 4, cfg.Export.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Profile(t *testing.T) {
	dir := chdir(t)
	t.Setenv(APIEnvVar, "")

	path := writeFile(t, dir, "config.yaml", `
env: prod
local:
  backend:
    base_url: http://localhost:1
prod:
  backend:
    base_url: https://shops.example.com/
    page_size: 12
  retry:
    max_attempts: 3
  server:
    port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "https://shops.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 12, cfg.Backend.PageSize)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesYaml(t *testing.T) {
	dir := chdir(t)
	t.Setenv(APIEnvVar, "http://api.internal:8081")

	path := writeFile(t, dir, "config.yaml", "env: dev\ndev:\n  backend:\n    base_url: http://ignored\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8081", cfg.Backend.BaseURL)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	t.Setenv(APIEnvVar, "")
	require.NoError(t, os.Unsetenv(APIEnvVar))

	writeFile(t, dir, ".env", APIEnvVar+"=http://from-dotenv:9999\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:9999", cfg.Backend.BaseURL)
}

func TestLoad_UnknownEnv(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "config.yaml", "env: staging\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t)
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
