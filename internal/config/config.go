// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-publisher/models"
)

// Defaults applied when neither the file nor the environment set a value.
const (
	DefaultConfigPath    = "config/config.yaml"
	DefaultAPIBaseURL    = "https://api.weixin.qq.com"
	DefaultTokenTimeout  = 10 * time.Second
	DefaultUploadTimeout = 30 * time.Second
	DefaultMaxImageSize  = "10MB"
)

// StructuredConfig mirrors the shape of the YAML config file and carries the
// env tags used for the environment fallback.
//
// Struct tags:
//   - yaml — key in the config file (goccy/go-yaml).
//   - env  — environment variable name (caarlos0/env).
type StructuredConfig struct {
	// Notification holds the platform credentials under
	// notification.webhooks.
	Notification Notification `yaml:"notification"`

	// Crawler holds the outbound proxy settings.
	Crawler Crawler `yaml:"crawler"`

	// WeChat holds optional endpoint, timeout and size-limit overrides.
	WeChat WeChat `yaml:"wechat"`

	// ConfigPath is the path of the YAML file. Populated from the -c / -config
	// flag or the CONFIG_PATH environment variable; never read from the file.
	ConfigPath string `env:"CONFIG_PATH" yaml:"-"`
}

// Notification groups the notification section of the config file.
type Notification struct {
	Webhooks Webhooks `yaml:"webhooks"`
}

// Webhooks holds the Official Account credentials.
type Webhooks struct {
	// WeChatAppID is the application identifier.
	// Env: WECHAT_APP_ID
	WeChatAppID string `env:"WECHAT_APP_ID" yaml:"wechat_app_id"`

	// WeChatAppSecret is the application secret.
	// Env: WECHAT_APP_SECRET
	WeChatAppSecret string `env:"WECHAT_APP_SECRET" yaml:"wechat_app_secret"`
}

// Crawler holds proxy settings shared with the crawler that produced the
// original config file.
type Crawler struct {
	// UseProxy enables routing platform requests through DefaultProxy.
	UseProxy bool `yaml:"use_proxy"`

	// DefaultProxy is the proxy URL (e.g. "http://127.0.0.1:7890").
	DefaultProxy string `yaml:"default_proxy"`
}

// WeChat holds optional overrides for the platform endpoints and limits.
type WeChat struct {
	APIBaseURL    string   `yaml:"api_base_url"`
	TokenTimeout  Duration `yaml:"token_timeout"`
	UploadTimeout Duration `yaml:"upload_timeout"`
	MaxImageSize  string   `yaml:"max_image_size"`
}

// AdapterConfig holds the settings of the platform HTTP adapter.
type AdapterConfig struct {
	// BaseURL is the scheme and host of the platform API.
	BaseURL string
	// ProxyURL is empty unless crawler.use_proxy is true.
	ProxyURL string
	// TokenTimeout bounds the token request.
	TokenTimeout time.Duration
	// UploadTimeout bounds the upload request.
	UploadTimeout time.Duration
}

// ValidationConfig holds the image validation limits.
type ValidationConfig struct {
	// MaxImageSize is the inclusive size limit in bytes.
	MaxImageSize int64
	// MaxImageSizeLabel is the human-readable limit used in messages.
	MaxImageSizeLabel string
}

// UploaderConfig is the immutable view of the configuration consumed by the
// uploader. It is built once at startup and passed by value.
type UploaderConfig struct {
	Credentials models.Credentials
	Adapter     AdapterConfig
	Validation  ValidationConfig
	// ConfigPath is the file the configuration was read from.
	ConfigPath string
}

// GetUploaderConfig loads, merges, and validates the configuration.
//
// flagConfigPath is the value of the -c flag and may be empty, in which case
// CONFIG_PATH or [DefaultConfigPath] is used. Returns [ErrConfigMissing]
// (wrapped) when the file does not exist and [ErrCredentialsMissing] when no
// source provides both credentials.
func GetUploaderConfig(flagConfigPath string) (*UploaderConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(flagConfigPath).
		withDotEnv().
		withEnv().
		withYAML().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.toUploaderConfig()
}

func (cfg *StructuredConfig) toUploaderConfig() (*UploaderConfig, error) {
	maxSize, err := parseSize(cfg.WeChat.MaxImageSize)
	if err != nil {
		return nil, err
	}

	uploaderCfg := &UploaderConfig{
		Credentials: models.NewCredentials(
			cfg.Notification.Webhooks.WeChatAppID,
			cfg.Notification.Webhooks.WeChatAppSecret,
		),
		Adapter: AdapterConfig{
			BaseURL:       cfg.WeChat.APIBaseURL,
			TokenTimeout:  time.Duration(cfg.WeChat.TokenTimeout),
			UploadTimeout: time.Duration(cfg.WeChat.UploadTimeout),
		},
		Validation: ValidationConfig{
			MaxImageSize:      maxSize,
			MaxImageSizeLabel: cfg.WeChat.MaxImageSize,
		},
		ConfigPath: cfg.ConfigPath,
	}
	if cfg.Crawler.UseProxy {
		uploaderCfg.Adapter.ProxyURL = cfg.Crawler.DefaultProxy
	}

	return uploaderCfg, uploaderCfg.validate()
}
