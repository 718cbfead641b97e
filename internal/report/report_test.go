package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-media-publisher/internal/app"
	"github.com/MKhiriev/go-media-publisher/internal/service"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/stretchr/testify/assert"
)

func TestUpload_Success(t *testing.T) {
	out := Upload(models.UploadResult{
		Success: true,
		MediaID: "M",
		URL:     "U",
		Payload: []byte(`{"media_id":"M","url":"U"}`),
	}, nil)

	assert.Contains(t, out, "UPLOAD SUCCEEDED")
	assert.Contains(t, out, "Media ID:")
	assert.Contains(t, out, " M")
	assert.Contains(t, out, " U")
	assert.Contains(t, out, `{"media_id":"M","url":"U"}`)
	assert.NotContains(t, out, "Error")
}

func TestUpload_SuccessWithoutURL(t *testing.T) {
	out := Upload(models.UploadResult{Success: true, MediaID: "M"}, nil)

	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "Payload")
}

func TestUpload_Failure(t *testing.T) {
	out := Upload(models.UploadResult{Payload: []byte(`{"errcode":40004}`)}, errors.New("image upload failed"))

	assert.Contains(t, out, "UPLOAD FAILED")
	assert.Contains(t, out, "image upload failed")
	assert.Contains(t, out, app.MsgUnknownError)
	assert.Contains(t, out, `{"errcode":40004}`)
	assert.NotContains(t, out, "Media ID")
}

func TestDocument(t *testing.T) {
	assert.Contains(t, Document("out.docx", nil), "DOCUMENT SAVED")

	out := Document("out.docx", errors.New("permission denied"))
	assert.Contains(t, out, "DOCUMENT NOT SAVED")
	assert.Contains(t, out, "permission denied")
}

func TestBuildInfo(t *testing.T) {
	out := BuildInfo("uploader", models.NewAppBuildInfo("1.2.3", "", ""))

	assert.Contains(t, out, "uploader")
	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA("  "))
	assert.Equal(t, "x", valueOrNA(" x "))
}

func TestUpload_FailureReason(t *testing.T) {
	err := fmt.Errorf("%w: /tmp/a.png", validators.ErrImageNotFound)
	out := Upload(models.NewUploadFailure(err.Error()), err)

	assert.Contains(t, out, app.MsgInvalidImage)
	assert.Contains(t, out, "/tmp/a.png")
}

func TestDocument_FailureReason(t *testing.T) {
	err := fmt.Errorf("%w: read-only file system", service.ErrDocumentSave)
	assert.Contains(t, Document("out.docx", err), app.MsgDocumentNotSaved)
}
