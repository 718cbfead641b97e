package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/models"
)

type publishService struct {
	tokens TokenService
	media  MediaService
	logger *logger.Logger
}

func NewPublishService(tokens TokenService, media MediaService, log *logger.Logger) PublishService {
	return &publishService{tokens: tokens, media: media, logger: log.WithComponent("publish")}
}

func (p *publishService) Publish(ctx context.Context, creds models.Credentials, path string) (models.UploadResult, error) {
	p.logger.Info().Str("path", path).Msg("publishing image")

	token, err := p.tokens.FetchAccessToken(ctx, creds)
	if err != nil {
		return models.NewUploadFailure(err.Error()), err
	}

	asset, err := p.media.ValidateImage(ctx, path)
	if err != nil {
		return models.NewUploadFailure(err.Error()), err
	}

	result, err := p.media.UploadImage(ctx, token, asset)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return result, nil
}
