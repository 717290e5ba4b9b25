package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the statuses the service documents to sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Other statuses become the
// matching sentinel wrapped with the error detail of the body.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, detail)
}

// errorDetail extracts the "detail" field of a JSON error body, falling back
// to the trimmed raw body.
func errorDetail(raw []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}
		return string(payload.Detail)
	}

	return strings.TrimSpace(string(raw))
}
