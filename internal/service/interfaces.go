// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases of both commands. The uploader
// services sit on top of [adapter.PlatformAdapter] and
// [validators.ImageInspector]; the document service builds a .docx file
// with the docx package.
package service

import (
	"context"

	"github.com/MKhiriev/go-media-publisher/models"
)

// TokenService exchanges application credentials for an access token.
type TokenService interface {
	// FetchAccessToken returns a fresh access token for creds. Blank
	// credentials fail with ErrCredentialsMissing before any network call.
	// Every failure is logged and returns an empty token.
	FetchAccessToken(ctx context.Context, creds models.Credentials) (string, error)
}

// MediaService validates local images and uploads them as permanent
// materials.
type MediaService interface {
	// ValidateImage checks existence, size and extension of the image at
	// path and returns its description.
	ValidateImage(ctx context.Context, path string) (models.ImageAsset, error)

	// UploadImage uploads asset, as returned by ValidateImage, using token.
	// The file must still exist; size and format are not checked again.
	// The result always carries a payload, including on failure; the error
	// keeps the adapter's error chain.
	UploadImage(ctx context.Context, token string, asset models.ImageAsset) (models.UploadResult, error)
}

// PublishService runs the whole uploader flow: token, validation, upload.
type PublishService interface {
	// Publish returns the upload result together with the first error
	// encountered. On failure the result carries an error payload.
	Publish(ctx context.Context, creds models.Credentials, path string) (models.UploadResult, error)
}

// DocumentService builds the hyperlink demonstration document.
type DocumentService interface {
	// BuildLinkDocument writes the document to outPath. A failed clickable
	// hyperlink degrades to styled text and is not an error; only saving
	// can fail.
	BuildLinkDocument(ctx context.Context, outPath string) error
}
