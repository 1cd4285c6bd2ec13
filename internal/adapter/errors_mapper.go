package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError rebuilds the server's *app.Error from a non-2xx answer. The
// JSON message is used when present; otherwise the raw body or the status
// text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var body app.Error
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		message = body.Message
	}

	appErr, err := app.FromStatusCode(resp.StatusCode(), message)
	if err != nil {
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
	return appErr
}
