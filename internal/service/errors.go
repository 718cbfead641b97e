package service

import (
	"errors"

	"github.com/MKhiriev/go-media-publisher/internal/config"
)

var (
	ErrCredentialsMissing = config.ErrCredentialsMissing

	ErrTokenUnavailable = errors.New("access token unavailable")
	ErrUploadFailed     = errors.New("image upload failed")
	ErrDocumentSave     = errors.New("document save failed")
)
