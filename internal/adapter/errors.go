package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrTransport          = errors.New("transport failure")
	ErrMalformedResponse  = errors.New("malformed platform response")
	ErrAccessTokenMissing = errors.New("access_token missing in platform response")
	ErrMediaIDMissing     = errors.New("media_id missing in platform response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooLarge            = errors.New("request entity too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

// PlatformError is an application error reported by the platform, either as
// a non-2xx response or as a 2xx response lacking the expected field.
type PlatformError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// ErrCode and ErrMsg are the platform "errcode"/"errmsg" fields, when
	// present.
	ErrCode int
	ErrMsg  string
	// Body is the response body if it is valid JSON, nil otherwise.
	Body json.RawMessage
	// Raw is the response body as received.
	Raw string

	kind error
}

func (e *PlatformError) Error() string {
	msg := fmt.Sprintf("%s (http %d", e.kind, e.StatusCode)
	if e.ErrCode != 0 {
		msg += fmt.Sprintf(", errcode %d", e.ErrCode)
	}
	msg += ")"
	if e.ErrMsg != "" {
		msg += ": " + e.ErrMsg
	} else if e.Raw != "" {
		msg += ": " + e.Raw
	}
	return msg
}

// Unwrap returns the sentinel describing the failure kind, so that
// errors.Is(err, ErrUnauthorized) and similar checks work.
func (e *PlatformError) Unwrap() error {
	return e.kind
}

// HasJSONBody reports whether the platform returned a JSON body that can be
// surfaced verbatim.
func (e *PlatformError) HasJSONBody() bool {
	return len(e.Body) > 0
}
