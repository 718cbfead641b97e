// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credentials identifies the Official Account application against the
// platform token endpoint.
type Credentials struct {
	// AppID is the application identifier ("appid").
	AppID string
	// AppSecret is the application secret ("secret"). Never logged.
	AppSecret string
}

// NewCredentials returns Credentials with surrounding whitespace removed
// from both values.
func NewCredentials(appID, appSecret string) Credentials {
	return Credentials{
		AppID:     strings.TrimSpace(appID),
		AppSecret: strings.TrimSpace(appSecret),
	}
}

// IsBlank reports whether the app id or the secret is empty.
func (c Credentials) IsBlank() bool {
	return strings.TrimSpace(c.AppID) == "" || strings.TrimSpace(c.AppSecret) == ""
}
