// Package config provides configuration loading, merging, and validation
// facilities for the uploader command.
//
// Configuration is assembled from the following sources. For every field the
// first source that provides a non-zero value wins:
//  1. Command-line flags (config file path only)
//  2. YAML config file (required; path from -c, CONFIG_PATH or the default
//     config/config.yaml)
//  3. Environment variables, optionally seeded from a .env file
//
// The main entry point is [GetUploaderConfig], which returns the flattened
// [UploaderConfig] view consumed by the adapter, validator and services.
package config
