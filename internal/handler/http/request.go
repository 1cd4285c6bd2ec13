package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-card-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
)

// decodeBody decodes the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}
	return nil
}

// decodePayload decodes a loosely typed object such as {"id": "3"}.
// Numbers are kept as json.Number so large ids are not rounded.
func decodePayload(r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}
	return payload, nil
}

// pathID parses the named path parameter as a positive id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := validators.ParseID(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPathID, err)
	}
	return id, nil
}

// queryMap flattens the query string, keeping the first value of each key.
func queryMap(r *http.Request) map[string]any {
	values := r.URL.Query()
	query := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			query[key] = vals[0]
		}
	}
	return query
}
