package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/service"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service with a permissive mock. Tests replace
// the one they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		CardService:    &mockCardService{},
		UserService:    &mockUserService{},
		DeckService:    &mockDeckService{},
		AuthService:    &mockAuthService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
		HealthService: &mockHealthService{status: models.HealthStatus{
			Status: models.HealthStatusHealthy, Database: "up", Version: "test-version",
		}},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return newHandlerForTest(services)
}

// newHandlerForTest builds a Handler with a silent logger and no timeout.
func newHandlerForTest(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve routes a request through the full router.
func serve(t *testing.T, h *Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

var bearer = map[string]string{"Authorization": "Bearer valid-token"}

// decodeError reads an app.Error JSON body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) app.Error {
	t.Helper()
	var appErr app.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	return appErr
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 5}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metrics)
	assert.EqualValues(t, 5, h.requestTimeout)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

var openRoutes = []routeCase{
	{http.MethodGet, "/health"},
	{http.MethodGet, "/version"},
	{http.MethodGet, "/metrics"},
	{http.MethodGet, "/cards"},
	{http.MethodGet, "/cards/1"},
	{http.MethodGet, "/cards/rarity/Rare"},
	{http.MethodGet, "/cards/name/Fireball"},
	{http.MethodGet, "/users"},
	{http.MethodGet, "/users/1"},
	{http.MethodGet, "/users/username/real_user"},
	{http.MethodGet, "/decks"},
	{http.MethodGet, "/decks/1"},
	{http.MethodGet, "/decks/author/3"},
	{http.MethodGet, "/decks/name/Aggro"},
}

var protectedRoutes = []routeCase{
	{http.MethodPost, "/cards"},
	{http.MethodPut, "/cards"},
	{http.MethodDelete, "/cards"},
	{http.MethodPut, "/users"},
	{http.MethodDelete, "/users"},
	{http.MethodPost, "/decks"},
	{http.MethodPut, "/decks"},
	{http.MethodDelete, "/decks"},
}

func TestInit_RegistersOpenRoutes(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	for _, tc := range openRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, nil, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// Protected routes answer 401 without a token, which proves they exist.
func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, nil, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).StatusCode)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := serve(t, newTestHandler(t, newTestServices()), http.MethodGet, "/spells", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgResourceNotFound, decodeError(t, rec).Message)
}

func TestInit_TrailingSlashIsServed(t *testing.T) {
	rec := serve(t, newTestHandler(t, newTestServices()), http.MethodGet, "/cards/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
