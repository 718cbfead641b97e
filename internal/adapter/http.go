// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-media-publisher/internal/config"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/utils"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

const (
	tokenPath  = "/cgi-bin/token"
	uploadPath = "/cgi-bin/material/add_material"

	mediaField  = "media"
	octetStream = "application/octet-stream"
)

type httpPlatformAdapter struct {
	client *utils.HTTPClient
	fs     afero.Fs

	tokenTimeout  time.Duration
	uploadTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs the resty implementation of
// [PlatformAdapter].
//
// It normalises the base URL from adapterCfg.BaseURL, routes requests through
// adapterCfg.ProxyURL when set and keeps the per-call timeouts, which are
// applied as context deadlines. Image files are opened through fs.
//
// Returns an error if the base URL or the proxy URL cannot be parsed.
func NewHTTPPlatformAdapter(adapterCfg config.AdapterConfig, fs afero.Fs, log *logger.Logger) (PlatformAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.BaseURL, adapterCfg.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter config: %w", err)
	}

	tokenTimeout := adapterCfg.TokenTimeout
	if tokenTimeout <= 0 {
		tokenTimeout = config.DefaultTokenTimeout
	}
	uploadTimeout := adapterCfg.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = config.DefaultUploadTimeout
	}

	return &httpPlatformAdapter{
		client:        client,
		fs:            fs,
		tokenTimeout:  tokenTimeout,
		uploadTimeout: uploadTimeout,
		logger:        log.WithComponent("adapter"),
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	platformStatus
}

// AccessToken implements [PlatformAdapter]. It sends
// GET /cgi-bin/token?grant_type=client_credential&appid=..&secret=.. bounded
// by the token timeout.
func (h *httpPlatformAdapter) AccessToken(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	ctx, cancel := context.WithTimeout(ctx, h.tokenTimeout)
	defer cancel()

	h.logger.Debug().Str("app_id", creds.AppID).Msg("requesting access token")

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type": "client_credential",
			"appid":      creds.AppID,
			"secret":     creds.AppSecret,
		}).
		Get(tokenPath)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("token request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.AccessToken{}, fmt.Errorf("decode token response: %w: %w", ErrMalformedResponse, err)
	}
	if tr.AccessToken == "" {
		return models.AccessToken{}, newPlatformError(ErrAccessTokenMissing, resp.StatusCode(), resp.Body())
	}

	return models.AccessToken{Value: tr.AccessToken, ExpiresIn: tr.ExpiresIn}, nil
}

type uploadResponse struct {
	models.MediaResponse
	platformStatus
}

// UploadImage implements [PlatformAdapter]. It sends
// POST /cgi-bin/material/add_material?access_token=..&type=image with the
// file in the "media" multipart field, bounded by the upload timeout.
func (h *httpPlatformAdapter) UploadImage(ctx context.Context, token string, asset models.ImageAsset) (models.MediaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.uploadTimeout)
	defer cancel()

	file, err := h.fs.Open(asset.Path)
	if err != nil {
		return models.MediaResponse{}, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	contentType, err := detectContentType(file)
	if err != nil {
		return models.MediaResponse{}, fmt.Errorf("detect image content type: %w", err)
	}

	h.logger.Debug().
		Str("path", asset.Path).
		Int64("size", asset.Size).
		Str("content_type", contentType).
		Msg("uploading image")

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": token,
			"type":         "image",
		}).
		SetMultipartField(mediaField, filepath.Base(asset.Path), contentType, file).
		Post(uploadPath)
	if err != nil {
		return models.MediaResponse{}, fmt.Errorf("upload request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaResponse{}, err
	}

	var ur uploadResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.MediaResponse{}, fmt.Errorf("decode upload response: %w: %w", ErrMalformedResponse, err)
	}
	if ur.MediaID == "" {
		return models.MediaResponse{}, newPlatformError(ErrMediaIDMissing, resp.StatusCode(), resp.Body())
	}

	ur.MediaResponse.Raw = json.RawMessage(resp.Body())
	return ur.MediaResponse, nil
}

// detectContentType sniffs the head of file for the multipart part header
// and rewinds it. Falls back to application/octet-stream.
func detectContentType(file afero.File) (string, error) {
	mt, err := mimetype.DetectReader(file)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", seekErr
	}
	if err != nil || mt == nil {
		return octetStream, nil
	}

	return mt.String(), nil
}
