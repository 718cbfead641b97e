package service

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/mock"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLogger returns a JSON logger writing into the returned buffer so
// tests can assert on what was logged.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logger.NewJSONLogger("test", &buf), &buf
}

// writeImage stores size bytes at path on fs.
func writeImage(t *testing.T, fs afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, bytes.Repeat([]byte{0x42}, size), 0o644))
}

// newTestUploaderSvcs wires the uploader services to a mock adapter and an
// in-memory filesystem.
func newTestUploaderSvcs(t *testing.T, ctrl *gomock.Controller) (*UploaderServices, *mock.MockPlatformAdapter, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	mockAdapter := mock.NewMockPlatformAdapter(ctrl)
	log, buf := newTestLogger(t)

	svcs := NewUploaderServices(mockAdapter, validators.NewImageValidator(fs, 0, ""), log)
	return svcs, mockAdapter, fs, buf
}

