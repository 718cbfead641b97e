// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// ImageAsset describes a local image that passed validation and is ready to
// be uploaded.
type ImageAsset struct {
	// Path is the filesystem path as given on the command line.
	Path string
	// Size is the file size in bytes.
	Size int64
	// Ext is the lower-cased file extension including the leading dot.
	Ext string
}

// MediaResponse is the success body of the permanent material upload
// endpoint.
type MediaResponse struct {
	MediaID string `json:"media_id"`
	URL     string `json:"url,omitempty"`

	// Raw is the response body as received.
	Raw json.RawMessage `json:"-"`
}

// UploadResult is the outcome of a single upload attempt.
//
// On success MediaID is set and Payload holds the platform response. On
// failure Payload holds either the platform error body verbatim or a locally
// synthesized {"error": "..."} object.
type UploadResult struct {
	Success bool
	MediaID string
	URL     string
	Payload json.RawMessage
}

// NewUploadFailure builds a failed UploadResult whose payload is a local
// {"error": msg} object.
func NewUploadFailure(msg string) UploadResult {
	return UploadResult{Payload: ErrorPayload(msg)}
}

// ErrorPayload encodes msg as {"error": msg}.
func ErrorPayload(msg string) json.RawMessage {
	payload, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return json.RawMessage(fmt.Sprintf("{%q:%q}", "error", msg))
	}
	return payload
}

// URLOrNA returns URL or "N/A" when the platform did not report one.
func (r UploadResult) URLOrNA() string {
	if r.URL == "" {
		return "N/A"
	}
	return r.URL
}
