// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// command summaries.
//
// All Msg* constants are human-readable descriptions of a failure category.
// Keeping them in one place ensures consistent wording across both commands.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/config"
	"github.com/MKhiriev/go-media-publisher/internal/docx"
	"github.com/MKhiriev/go-media-publisher/internal/service"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
)

const (
	// MsgConfigurationMissing is shown when the config file cannot be found.
	MsgConfigurationMissing = "configuration missing"

	// MsgInvalidConfiguration is shown when a config value cannot be used,
	// e.g. a malformed proxy URL or size limit.
	MsgInvalidConfiguration = "invalid configuration"

	// MsgCredentialsMissing is shown when the app id or secret is blank.
	MsgCredentialsMissing = "credentials missing"

	// MsgTransportFailure is shown when the platform could not be reached.
	MsgTransportFailure = "network failure"

	// MsgMalformedResponse is shown when the platform answered with a body
	// that could not be decoded.
	MsgMalformedResponse = "malformed platform response"

	// MsgPlatformError is shown when the platform rejected the request or
	// omitted an expected field.
	MsgPlatformError = "platform error"

	// MsgInvalidImage is shown when local image validation fails.
	MsgInvalidImage = "invalid image"

	// MsgDocumentNotSaved is shown when the output document cannot be
	// written.
	MsgDocumentNotSaved = "document not saved"

	// MsgInvalidLink is shown when a hyperlink target is rejected.
	MsgInvalidLink = "invalid link"

	// MsgInterrupted is shown when the run was cancelled by a signal.
	MsgInterrupted = "interrupted"

	// MsgUnknownError is shown for anything else.
	MsgUnknownError = "unexpected error"
)

// Describe returns the Msg* category of err, or "" for a nil error.
func Describe(err error) string {
	var platformErr *adapter.PlatformError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigMissing):
		return MsgConfigurationMissing
	case errors.Is(err, config.ErrCredentialsMissing):
		return MsgCredentialsMissing
	case errors.Is(err, config.ErrInvalidProxy),
		errors.Is(err, config.ErrInvalidBaseURL),
		errors.Is(err, config.ErrInvalidMaxImageSize):
		return MsgInvalidConfiguration
	case errors.Is(err, adapter.ErrTransport):
		if errors.Is(err, context.Canceled) {
			return MsgInterrupted
		}
		return MsgTransportFailure
	case errors.Is(err, adapter.ErrMalformedResponse):
		return MsgMalformedResponse
	case errors.As(err, &platformErr):
		return MsgPlatformError
	case errors.Is(err, validators.ErrImageNotFound),
		errors.Is(err, validators.ErrImageTooLarge),
		errors.Is(err, validators.ErrUnsupportedFormat):
		return MsgInvalidImage
	case errors.Is(err, docx.ErrInvalidLinkTarget):
		return MsgInvalidLink
	case errors.Is(err, service.ErrDocumentSave):
		if errors.Is(err, context.Canceled) {
			return MsgInterrupted
		}
		return MsgDocumentNotSaved
	case errors.Is(err, context.Canceled):
		return MsgInterrupted
	default:
		return MsgUnknownError
	}
}
