// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// parseYAML decodes the config file at path into a [StructuredConfig].
//
// Returns [ErrConfigMissing] (wrapped with the path) if the file does not
// exist. Keys the application does not consume are ignored.
func parseYAML(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer file.Close()

	cfg := &StructuredConfig{}
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		// an empty file decodes to io.EOF and is treated as an empty config
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "10s", "1m" or from a plain integer of nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case uint64:
		*d = Duration(time.Duration(value))
		return nil
	case int64:
		*d = Duration(time.Duration(value))
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		*d = 0
		return nil
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
}
