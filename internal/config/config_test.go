// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func writeTempYAMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// clearEnv makes sure credentials from the host environment do not leak
// into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "WECHAT_APP_ID", "WECHAT_APP_SECRET"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

const fullYAML = `
notification:
  webhooks:
    wechat_app_id: " wx-file-id "
    wechat_app_secret: file-secret
crawler:
  use_proxy: true
  default_proxy: http://127.0.0.1:7890
  user_agent: ignored
wechat:
  api_base_url: http://localhost:9999
  token_timeout: 5s
  upload_timeout: 1m
  max_image_size: 2MB
`

// ── GetUploaderConfig ─────────────────────────────────────────────────────────

func TestGetUploaderConfig_FullFile(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, fullYAML)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "wx-file-id", cfg.Credentials.AppID)
	assert.Equal(t, "file-secret", cfg.Credentials.AppSecret)
	assert.Equal(t, "http://127.0.0.1:7890", cfg.Adapter.ProxyURL)
	assert.Equal(t, "http://localhost:9999", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.TokenTimeout)
	assert.Equal(t, time.Minute, cfg.Adapter.UploadTimeout)
	assert.Equal(t, int64(2*1024*1024), cfg.Validation.MaxImageSize)
	assert.Equal(t, "2MB", cfg.Validation.MaxImageSizeLabel)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestGetUploaderConfig_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, `
notification:
  webhooks:
    wechat_app_id: id
    wechat_app_secret: secret
`)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultTokenTimeout, cfg.Adapter.TokenTimeout)
	assert.Equal(t, DefaultUploadTimeout, cfg.Adapter.UploadTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Validation.MaxImageSize)
	assert.Empty(t, cfg.Adapter.ProxyURL)
}

func TestGetUploaderConfig_ProxyIgnoredWhenDisabled(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, `
notification:
  webhooks:
    wechat_app_id: id
    wechat_app_secret: secret
crawler:
  use_proxy: false
  default_proxy: http://127.0.0.1:7890
`)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.ProxyURL)
}

func TestGetUploaderConfig_FileWinsOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WECHAT_APP_ID", "env-id")
	t.Setenv("WECHAT_APP_SECRET", "env-secret")
	path := writeTempYAMLConfig(t, fullYAML)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "wx-file-id", cfg.Credentials.AppID)
	assert.Equal(t, "file-secret", cfg.Credentials.AppSecret)
}

func TestGetUploaderConfig_EnvFillsBlankFileValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WECHAT_APP_ID", "env-id")
	t.Setenv("WECHAT_APP_SECRET", " env-secret ")
	path := writeTempYAMLConfig(t, `
notification:
  webhooks:
    wechat_app_id: "   "
`)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", cfg.Credentials.AppID)
	assert.Equal(t, "env-secret", cfg.Credentials.AppSecret)
}

func TestGetUploaderConfig_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, fullYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := GetUploaderConfig("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestGetUploaderConfig_FlagPathWinsOverEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	path := writeTempYAMLConfig(t, fullYAML)

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestGetUploaderConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := GetUploaderConfig(missing)
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), missing)
}

func TestGetUploaderConfig_DefaultPathMissing(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	_, err := GetUploaderConfig("")
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), DefaultConfigPath)
}

func TestGetUploaderConfig_CredentialsMissing(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, "crawler:\n  use_proxy: false\n")

	_, err := GetUploaderConfig(path)
	require.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestGetUploaderConfig_EmptyFileUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WECHAT_APP_ID", "env-id")
	t.Setenv("WECHAT_APP_SECRET", "env-secret")
	path := writeTempYAMLConfig(t, "")

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", cfg.Credentials.AppID)
}

func TestGetUploaderConfig_InvalidProxy(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, `
notification:
  webhooks:
    wechat_app_id: id
    wechat_app_secret: secret
crawler:
  use_proxy: true
  default_proxy: not a url
`)

	_, err := GetUploaderConfig(path)
	require.ErrorIs(t, err, ErrInvalidProxy)
}

func TestGetUploaderConfig_InvalidMaxImageSize(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, `
notification:
  webhooks:
    wechat_app_id: id
    wechat_app_secret: secret
wechat:
  max_image_size: lots
`)

	_, err := GetUploaderConfig(path)
	require.ErrorIs(t, err, ErrInvalidMaxImageSize)
}

func TestGetUploaderConfig_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeTempYAMLConfig(t, "notification: [unclosed")

	_, err := GetUploaderConfig(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigMissing)
}

func TestGetUploaderConfig_DotEnvFallback(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("WECHAT_APP_ID=dotenv-id\nWECHAT_APP_SECRET=dotenv-secret\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("WECHAT_APP_ID")
		_ = os.Unsetenv("WECHAT_APP_SECRET")
	})
	path := writeTempYAMLConfig(t, "crawler:\n  use_proxy: false\n")

	cfg, err := GetUploaderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-id", cfg.Credentials.AppID)
	assert.Equal(t, "dotenv-secret", cfg.Credentials.AppSecret)
}
