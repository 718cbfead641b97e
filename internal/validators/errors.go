package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrImageNotFound     = errors.New("image file not found")
	ErrImageTooLarge     = errors.New("image file too large")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
