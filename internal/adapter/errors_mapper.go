package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// platformStatus is the error envelope the platform uses in both error and
// 200 responses.
type platformStatus struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusRequestEntityTooLarge:
		kind = ErrTooLarge
	case http.StatusBadGateway:
		kind = ErrBadGateway
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		kind = ErrUnexpectedStatus
	}

	return newPlatformError(kind, resp.StatusCode(), resp.Body())
}

// newPlatformError builds a PlatformError from a response body. The body is
// kept as JSON only if it parses.
func newPlatformError(kind error, statusCode int, body []byte) *PlatformError {
	pe := &PlatformError{
		StatusCode: statusCode,
		Raw:        strings.TrimSpace(string(body)),
		kind:       kind,
	}
	if pe.Raw == "" {
		pe.Raw = http.StatusText(statusCode)
	}

	var status platformStatus
	if err := json.Unmarshal(body, &status); err == nil {
		pe.Body = json.RawMessage(body)
		pe.ErrCode = status.ErrCode
		pe.ErrMsg = status.ErrMsg
	}

	return pe
}
