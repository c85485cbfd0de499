package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/legacy-vault/models"
)

// mapHTTPError returns nil for 2xx responses and a sentinel-wrapped error
// otherwise. The message is the "error" field of a JSON body when present,
// the raw body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := extractMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

func extractMessage(raw []byte) string {
	var vr models.ValidateResponse
	if err := json.Unmarshal(raw, &vr); err == nil && vr.Error != "" {
		return vr.Error
	}

	return strings.TrimSpace(string(raw))
}

// ErrorMessage returns the server-supplied message carried by an error from
// mapHTTPError, or "" when err carries none.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	_, msg, found := strings.Cut(err.Error(), ": ")
	if !found {
		return ""
	}
	return msg
}
