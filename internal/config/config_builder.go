package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		cfg.trim()
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	return config, nil
}

func (b *configBuilder) withFlags(configPath string) *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{ConfigPath: configPath})
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withYAML reads the config file and puts it in front of the already
// collected sources: explicit file values win over the environment.
func (b *configBuilder) withYAML() *configBuilder {
	path := b.configPath()

	yamlCfg, err := parseYAML(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	yamlCfg.ConfigPath = path

	b.configs = append([]*StructuredConfig{yamlCfg}, b.configs...)
	return b
}

// configPath returns the first non-empty ConfigPath among the collected
// sources, or DefaultConfigPath.
func (b *configBuilder) configPath() string {
	for _, cfg := range b.configs {
		if p := strings.TrimSpace(cfg.ConfigPath); p != "" {
			return p
		}
	}
	return DefaultConfigPath
}

func (cfg *StructuredConfig) trim() {
	cfg.Notification.Webhooks.WeChatAppID = strings.TrimSpace(cfg.Notification.Webhooks.WeChatAppID)
	cfg.Notification.Webhooks.WeChatAppSecret = strings.TrimSpace(cfg.Notification.Webhooks.WeChatAppSecret)
	cfg.Crawler.DefaultProxy = strings.TrimSpace(cfg.Crawler.DefaultProxy)
	cfg.WeChat.APIBaseURL = strings.TrimSpace(cfg.WeChat.APIBaseURL)
	cfg.WeChat.MaxImageSize = strings.TrimSpace(cfg.WeChat.MaxImageSize)
	cfg.ConfigPath = strings.TrimSpace(cfg.ConfigPath)
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.WeChat.APIBaseURL == "" {
		cfg.WeChat.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.WeChat.TokenTimeout <= 0 {
		cfg.WeChat.TokenTimeout = Duration(DefaultTokenTimeout)
	}
	if cfg.WeChat.UploadTimeout <= 0 {
		cfg.WeChat.UploadTimeout = Duration(DefaultUploadTimeout)
	}
	if cfg.WeChat.MaxImageSize == "" {
		cfg.WeChat.MaxImageSize = DefaultMaxImageSize
	}
}
