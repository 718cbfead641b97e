package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/models"
)

type tokenService struct {
	adapter adapter.PlatformAdapter
	logger  *logger.Logger
}

func NewTokenService(platform adapter.PlatformAdapter, log *logger.Logger) TokenService {
	return &tokenService{adapter: platform, logger: log.WithComponent("token")}
}

func (t *tokenService) FetchAccessToken(ctx context.Context, creds models.Credentials) (string, error) {
	if creds.IsBlank() {
		t.logger.Error().
			Bool("app_id_set", creds.AppID != "").
			Bool("app_secret_set", creds.AppSecret != "").
			Msg("app id or app secret is missing")
		return "", ErrCredentialsMissing
	}

	token, err := t.adapter.AccessToken(ctx, creds)
	if err != nil {
		var platformErr *adapter.PlatformError
		if errors.As(err, &platformErr) {
			t.logger.Error().
				Int("status", platformErr.StatusCode).
				Int("errcode", platformErr.ErrCode).
				Str("body", platformErr.Raw).
				Msg("failed to obtain access token")
		} else {
			t.logger.Error().Err(err).Msg("failed to obtain access token")
		}
		return "", fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}

	t.logger.Info().Int("expires_in", token.ExpiresIn).Msg("access token obtained")
	return token.Value, nil
}
