package config

import "errors"

// Errors returned while loading or validating the uploader configuration.
var (
	// ErrConfigMissing indicates that the resolved config file path does not
	// exist.
	ErrConfigMissing = errors.New("configuration missing")
	// ErrCredentialsMissing indicates that the app id or app secret is blank
	// in both the config file and the environment.
	ErrCredentialsMissing = errors.New("wechat app id or app secret is not configured")
	// ErrInvalidProxy indicates that crawler.default_proxy is not an absolute URL.
	ErrInvalidProxy = errors.New("invalid proxy url")
	// ErrInvalidBaseURL indicates that wechat.api_base_url is not an absolute URL.
	ErrInvalidBaseURL = errors.New("invalid api base url")
	// ErrInvalidMaxImageSize indicates that wechat.max_image_size cannot be
	// parsed as a positive human-readable size.
	ErrInvalidMaxImageSize = errors.New("invalid max image size")
	// ErrMissingImagePath indicates that no image path argument was given.
	ErrMissingImagePath = errors.New("image path argument is required")
)
