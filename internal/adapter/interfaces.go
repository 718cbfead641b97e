// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to the
// WeChat Official Account API.
//
// The primary abstraction is [PlatformAdapter], which decouples the service
// layer from HTTP details. The package ships a resty-based implementation
// ([NewHTTPPlatformAdapter]).
//
// Error values defined in errors.go let callers use [errors.Is] and
// [errors.As] for transport-agnostic handling: [ErrTransport] for network
// failures, [ErrMalformedResponse] for undecodable bodies and [*PlatformError]
// for anything the platform itself reported.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-media-publisher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// PlatformAdapter defines the two platform calls the uploader needs. Every
// call is a single attempt; implementations never retry.
type PlatformAdapter interface {
	// AccessToken exchanges creds for a fresh access token via the token
	// endpoint. Returns a [*PlatformError] wrapping [ErrAccessTokenMissing]
	// when the response carries no access_token.
	AccessToken(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// UploadImage posts asset as a permanent image material using token.
	// The file is streamed as the "media" multipart field and closed before
	// returning. Returns a [*PlatformError] on HTTP error status or when the
	// response carries no media_id.
	UploadImage(ctx context.Context, token string, asset models.ImageAsset) (models.MediaResponse, error)
}
