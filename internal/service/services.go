package service

import (
	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
)

type UploaderServices struct {
	TokenService   TokenService
	MediaService   MediaService
	PublishService PublishService
}

func NewUploaderServices(platform adapter.PlatformAdapter, validator validators.ImageInspector, log *logger.Logger) *UploaderServices {
	tokenSvc := NewTokenService(platform, log)
	mediaSvc := NewMediaService(platform, validator, log)

	return &UploaderServices{
		TokenService:   tokenSvc,
		MediaService:   mediaSvc,
		PublishService: NewPublishService(tokenSvc, mediaSvc, log),
	}
}
