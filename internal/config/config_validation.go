// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/docker/go-units"
)

// validate checks that the final [UploaderConfig] satisfies all invariants
// before it is used at startup.
func (cfg *UploaderConfig) validate() error {
	if cfg.Credentials.IsBlank() {
		return ErrCredentialsMissing
	}

	if cfg.Adapter.ProxyURL != "" && !isAbsoluteURL(cfg.Adapter.ProxyURL) {
		return fmt.Errorf("%w: %q", ErrInvalidProxy, cfg.Adapter.ProxyURL)
	}

	if !isAbsoluteURL(cfg.Adapter.BaseURL) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.Adapter.BaseURL)
	}

	return nil
}

// parseSize converts a human-readable size such as "10MB" into bytes using
// binary multiples (10MB = 10 * 1024 * 1024).
func parseSize(size string) (int64, error) {
	n, err := units.RAMInBytes(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMaxImageSize, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidMaxImageSize, size)
	}

	return n, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
