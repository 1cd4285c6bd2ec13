package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 15 * time.Second
	retryCount     = 2
	retryWait      = 200 * time.Millisecond
)

type httpAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter returns an [APIAdapter] talking to address, which may omit
// the scheme ("localhost:8080"). A non-positive timeout uses 15s.
func NewHTTPAdapter(address string, timeout time.Duration, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
		utils.WithRetries(retryCount, retryWait),
	)

	return &httpAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return status, fmt.Errorf("health request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusServiceUnavailable {
		return status, mapHTTPError(resp)
	}
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return status, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return status, nil
}

func (h *httpAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// Register POSTs the user to /users and stores the issued bearer token.
func (h *httpAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	h.SetToken(token)
	return created, nil
}

// Login POSTs the credentials to /users/auth. The user id is read from the
// token subject without verifying the signature; the server verifies it.
func (h *httpAdapter) Login(ctx context.Context, username, password string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		Post("/users/auth")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", userID).Msg("logged in")
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpAdapter) GetCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	return cards, h.getJSON(ctx, "/cards", &cards)
}

func (h *httpAdapter) GetCardByID(ctx context.Context, id int64) (models.Card, error) {
	var card models.Card
	return card, h.getJSON(ctx, "/cards/"+strconv.FormatInt(id, 10), &card)
}

func (h *httpAdapter) AddCard(ctx context.Context, card models.Card) (models.Card, error) {
	var saved models.Card
	return saved, h.sendJSON(ctx, http.MethodPost, "/cards", card, &saved)
}

func (h *httpAdapter) UpdateCard(ctx context.Context, card models.Card) (models.Card, error) {
	var updated models.Card
	return updated, h.sendJSON(ctx, http.MethodPut, "/cards", card, &updated)
}

func (h *httpAdapter) DeleteCard(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	return deleted, h.sendJSON(ctx, http.MethodDelete, "/cards", map[string]any{"id": id}, &deleted)
}

func (h *httpAdapter) GetDecks(ctx context.Context) ([]models.Deck, error) {
	var decks []models.Deck
	return decks, h.getJSON(ctx, "/decks", &decks)
}

func (h *httpAdapter) GetDeckByID(ctx context.Context, id int64) (models.Deck, error) {
	var deck models.Deck
	return deck, h.getJSON(ctx, "/decks/"+strconv.FormatInt(id, 10), &deck)
}

func (h *httpAdapter) AddDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	var saved models.Deck
	return saved, h.sendJSON(ctx, http.MethodPost, "/decks", deck, &saved)
}

func (h *httpAdapter) DeleteDeck(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	return deleted, h.sendJSON(ctx, http.MethodDelete, "/decks", map[string]any{"id": id}, &deleted)
}

func (h *httpAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return decodeResponse(resp, result)
}

func (h *httpAdapter) sendJSON(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return decodeResponse(resp, result)
}

func decodeResponse(resp *resty.Response, result any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

func (h *httpAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
