// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation performed
// before anything is sent to the platform.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ImageInspector: a Validator for local images that can also describe
//     the file it checked.
//
// Validators are pure: they may read local files but never touch the network.
package validators

import (
	"context"

	"github.com/MKhiriev/go-media-publisher/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named checks.
	Validate(context.Context, any, ...string) error
}

// ImageInspector validates local images. Inspect runs every check and
// describes the file; Validate re-runs a subset of checks on a path or an
// already described [models.ImageAsset].
type ImageInspector interface {
	Validator

	Inspect(ctx context.Context, path string) (models.ImageAsset, error)
}
