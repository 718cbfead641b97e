package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-media-publisher/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("https://api.weixin.qq.com", "")
//	resp, err := client.R().Get("/cgi-bin/token")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL.
//
// baseURL may omit the scheme, in which case "https://" is assumed. When
// proxyURL is non-empty every request is routed through it, for both http
// and https targets. Each call returns an independent client with its own
// connection pool.
//
// Returns an error if baseURL or proxyURL cannot be parsed.
func NewHTTPClient(baseURL, proxyURL string) (*HTTPClient, error) {
	base, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(base).
		SetHeader("User-Agent", userAgent)

	if proxyURL = strings.TrimSpace(proxyURL); proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		client.SetProxy(proxyURL)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL trims raw, adds a default https scheme when missing and
// strips the trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
