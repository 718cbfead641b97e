// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/docker/go-units"
	"github.com/spf13/afero"
)

// Check names accepted by [ImageValidator.Validate]. They run in this order
// and the first failure stops validation.
const (
	// FieldExistence requires the path to exist and be a regular file.
	FieldExistence = "existence"

	// FieldSize requires the file size to be within the configured limit.
	FieldSize = "size"

	// FieldFormat requires the extension to be in the allow-list.
	FieldFormat = "format"
)

// DefaultMaxImageSize is the platform limit for permanent image materials.
const DefaultMaxImageSize int64 = 10 * 1024 * 1024

// allowedExtensions is the exhaustive, lower-case allow-list of image
// extensions accepted by the platform.
var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

var checkOrder = []string{FieldExistence, FieldSize, FieldFormat}

var _ ImageInspector = (*ImageValidator)(nil)

// ImageValidator checks a local image before upload. The content of the file
// is never inspected; only existence, size and extension are.
type ImageValidator struct {
	fs           afero.Fs
	maxSize      int64
	maxSizeLabel string
}

// NewImageValidator constructs an ImageValidator reading from fsys.
//
// maxSize is the inclusive limit in bytes; values <= 0 select
// [DefaultMaxImageSize]. label is the human-readable limit used in error
// messages and is derived from maxSize when empty.
func NewImageValidator(fsys afero.Fs, maxSize int64, label string) *ImageValidator {
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
		label = ""
	}
	if label == "" {
		label = units.BytesSize(float64(maxSize))
	}

	return &ImageValidator{fs: fsys, maxSize: maxSize, maxSizeLabel: label}
}

// Validate implements [Validator]. obj may be a path string, a
// [models.ImageAsset] or a *models.ImageAsset. Optional fields restrict
// validation to the named checks; when omitted all checks run.
//
// Returns ErrUnsupportedType if obj is of any other type.
func (v *ImageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var path string
	switch value := obj.(type) {
	case string:
		path = value
	case models.ImageAsset:
		path = value.Path
	case *models.ImageAsset:
		if value == nil {
			return ErrUnsupportedType
		}
		path = value.Path
	default:
		return ErrUnsupportedType
	}

	_, err := v.inspect(ctx, path, fields...)
	return err
}

// Inspect runs every check against path and returns the described asset.
func (v *ImageValidator) Inspect(ctx context.Context, path string) (models.ImageAsset, error) {
	return v.inspect(ctx, path)
}

func (v *ImageValidator) inspect(_ context.Context, path string, fields ...string) (models.ImageAsset, error) {
	if len(fields) == 0 {
		fields = checkOrder
	}
	for _, f := range fields {
		if !slices.Contains(checkOrder, f) {
			return models.ImageAsset{}, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	asset := models.ImageAsset{
		Path: path,
		Ext:  strings.ToLower(filepath.Ext(path)),
	}

	for _, check := range checkOrder {
		if !slices.Contains(fields, check) {
			continue
		}

		var err error
		switch check {
		case FieldExistence:
			err = v.validateExistence(path)
		case FieldSize:
			asset.Size, err = v.validateSize(path)
		case FieldFormat:
			err = validateFormat(asset.Ext)
		}
		if err != nil {
			return models.ImageAsset{}, err
		}
	}

	return asset, nil
}

func (v *ImageValidator) validateExistence(path string) error {
	info, err := v.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrImageNotFound, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrImageNotFound, path)
	}

	return nil
}

func (v *ImageValidator) validateSize(path string) (int64, error) {
	info, err := v.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}

	size := info.Size()
	if size > v.maxSize {
		return size, fmt.Errorf("%w: %d bytes (limit %s, %d bytes)", ErrImageTooLarge, size, v.maxSizeLabel, v.maxSize)
	}

	return size, nil
}

func validateFormat(ext string) error {
	if slices.Contains(allowedExtensions, ext) {
		return nil
	}

	return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(allowedExtensions, ", "))
}
