package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/cards", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithTimeout(time.Second))

	resp, err := client.R().Get("/cards")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient(WithUserAgent("a"))
	b := NewHTTPClient()

	assert.NotSame(t, a.Client, b.Client)
	assert.Equal(t, "a", a.Header.Get("User-Agent"))
	assert.Equal(t, DefaultUserAgent, b.Header.Get("User-Agent"))
}

func TestWithRetries(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		wantCalls int32
	}{
		{"get is retried", http.MethodGet, 3},
		{"post is not retried", http.MethodPost, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			client := NewHTTPClient(WithBaseURL(srv.URL), WithRetries(2, time.Millisecond))

			resp, err := client.R().Execute(tt.method, "/health")
			require.NoError(t, err)
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
