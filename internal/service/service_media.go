package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
	"github.com/MKhiriev/go-media-publisher/models"
)

type mediaService struct {
	adapter   adapter.PlatformAdapter
	validator validators.ImageInspector
	logger    *logger.Logger
}

func NewMediaService(platform adapter.PlatformAdapter, validator validators.ImageInspector, log *logger.Logger) MediaService {
	return &mediaService{adapter: platform, validator: validator, logger: log.WithComponent("media")}
}

func (m *mediaService) ValidateImage(ctx context.Context, path string) (models.ImageAsset, error) {
	asset, err := m.validator.Inspect(ctx, path)
	if err != nil {
		m.logger.Error().Err(err).Str("path", path).Msg("image validation failed")
		return models.ImageAsset{}, err
	}

	m.logger.Debug().Str("path", asset.Path).Int64("size", asset.Size).Str("ext", asset.Ext).Msg("image is valid")
	return asset, nil
}

func (m *mediaService) UploadImage(ctx context.Context, token string, asset models.ImageAsset) (models.UploadResult, error) {
	if err := m.validator.Validate(ctx, asset, validators.FieldExistence); err != nil {
		result := models.NewUploadFailure(err.Error())
		m.logger.Error().Err(err).RawJSON("payload", result.Payload).Msg("image upload failed")
		return result, err
	}

	resp, err := m.adapter.UploadImage(ctx, token, asset)
	if err != nil {
		result := uploadFailure(err)
		m.logger.Error().Err(err).RawJSON("payload", result.Payload).Msg("image upload failed")
		return result, err
	}

	result := models.UploadResult{
		Success: true,
		MediaID: resp.MediaID,
		URL:     resp.URL,
		Payload: resp.Raw,
	}
	if len(result.Payload) == 0 {
		result.Payload, _ = json.Marshal(resp)
	}

	m.logger.Info().Msgf("Media ID: %s", result.MediaID)
	m.logger.Info().Msgf("Image URL: %s", result.URLOrNA())
	return result, nil
}

// uploadFailure keeps the platform's JSON error body verbatim when there is
// one and synthesizes {"error": ...} otherwise.
func uploadFailure(err error) models.UploadResult {
	var platformErr *adapter.PlatformError
	if errors.As(err, &platformErr) && platformErr.HasJSONBody() {
		return models.UploadResult{Payload: platformErr.Body}
	}
	return models.NewUploadFailure(err.Error())
}
