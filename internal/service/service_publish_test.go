package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublishService_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, fs, _ := newTestUploaderSvcs(t, ctrl)
	writeImage(t, fs, "/img/a.jpg", 10)
	creds := models.NewCredentials("wx123", "secret")

	gomock.InOrder(
		mockAdapter.EXPECT().AccessToken(gomock.Any(), creds).Return(models.AccessToken{Value: "T"}, nil),
		mockAdapter.EXPECT().UploadImage(gomock.Any(), "T", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, asset models.ImageAsset) (models.MediaResponse, error) {
				assert.Equal(t, "/img/a.jpg", asset.Path)
				assert.Equal(t, int64(10), asset.Size)
				return models.MediaResponse{MediaID: "M", URL: "U"}, nil
			},
		),
	)

	result, err := svcs.PublishService.Publish(context.Background(), creds, "/img/a.jpg")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "M", result.MediaID)
}

func TestPublishService_TokenFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, fs, _ := newTestUploaderSvcs(t, ctrl)
	writeImage(t, fs, "/img/a.jpg", 10)

	mockAdapter.EXPECT().AccessToken(gomock.Any(), gomock.Any()).
		Return(models.AccessToken{}, fmt.Errorf("%w: refused", adapter.ErrTransport))

	result, err := svcs.PublishService.Publish(context.Background(), models.NewCredentials("wx123", "secret"), "/img/a.jpg")
	require.ErrorIs(t, err, ErrTokenUnavailable)
	assert.False(t, result.Success)
	assert.Contains(t, string(result.Payload), "refused")
}

func TestPublishService_BlankCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, _, _, _ := newTestUploaderSvcs(t, ctrl)

	_, err := svcs.PublishService.Publish(context.Background(), models.Credentials{}, "/img/a.jpg")
	require.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestPublishService_ValidationFailureSkipsUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, fs, _ := newTestUploaderSvcs(t, ctrl)
	writeImage(t, fs, "/img/huge.png", int(validators.DefaultMaxImageSize)+1)

	mockAdapter.EXPECT().AccessToken(gomock.Any(), gomock.Any()).Return(models.AccessToken{Value: "T"}, nil)

	result, err := svcs.PublishService.Publish(context.Background(), models.NewCredentials("wx123", "secret"), "/img/huge.png")
	require.ErrorIs(t, err, validators.ErrImageTooLarge)
	assert.False(t, result.Success)
	assert.Contains(t, string(result.Payload), "10485761 bytes")
}

func TestPublishService_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcs, mockAdapter, fs, _ := newTestUploaderSvcs(t, ctrl)
	writeImage(t, fs, "/img/a.bmp", 10)

	mockAdapter.EXPECT().AccessToken(gomock.Any(), gomock.Any()).Return(models.AccessToken{Value: "T"}, nil)
	mockAdapter.EXPECT().UploadImage(gomock.Any(), "T", gomock.Any()).
		Return(models.MediaResponse{}, fmt.Errorf("%w: reset", adapter.ErrTransport))

	result, err := svcs.PublishService.Publish(context.Background(), models.NewCredentials("wx123", "secret"), "/img/a.bmp")
	require.ErrorIs(t, err, ErrUploadFailed)
	require.ErrorIs(t, err, adapter.ErrTransport)
	assert.False(t, result.Success)
	assert.Contains(t, err.Error(), "reset")
}
