package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/utils"
	"github.com/MKhiriev/amnplus-client/models"
	"github.com/go-resty/resty/v2"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs the HTTP/REST implementation of
// [VaultAdapter] bound to the vault backend at address. Each request is
// authenticated with a token taken from tokens at send time.
//
// Returns an error if address cannot be parsed as a valid URL.
func NewHTTPVaultAdapter(address string, timeout time.Duration, tokens TokenSource, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid vault address: %w", err)
	}

	return &httpVaultAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// ListPasswords implements [VaultAdapter].
func (h *httpVaultAdapter) ListPasswords(ctx context.Context) ([]models.Password, error) {
	var body models.PasswordsResponse
	if err := h.get(ctx, "list passwords", "/get/passwords", &body, &body.StatusResponse); err != nil {
		return nil, err
	}
	return body.Passwords, nil
}

// GetPassword implements [VaultAdapter].
func (h *httpVaultAdapter) GetPassword(ctx context.Context, id string) (models.Password, error) {
	var body models.PasswordResponse
	if err := h.get(ctx, "get password", "/get/password/"+url.PathEscape(id), &body, &body.StatusResponse); err != nil {
		return models.Password{}, err
	}
	return body.Password, nil
}

// AddPassword implements [VaultAdapter].
func (h *httpVaultAdapter) AddPassword(ctx context.Context, input models.PasswordInput) error {
	input.ID = ""
	return h.post(ctx, "add password", "/post/passwords", input)
}

// EditPassword implements [VaultAdapter].
func (h *httpVaultAdapter) EditPassword(ctx context.Context, input models.PasswordInput) error {
	return h.post(ctx, "edit password", "/post/edit-password", input)
}

// DeletePassword implements [VaultAdapter].
func (h *httpVaultAdapter) DeletePassword(ctx context.Context, id string) error {
	return h.post(ctx, "delete password", "/post/delete-password", models.DeleteRequest{ID: id})
}

// ListAPIKeys implements [VaultAdapter].
func (h *httpVaultAdapter) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	var body models.APIKeysResponse
	if err := h.get(ctx, "list api keys", "/get/apikeys", &body, &body.StatusResponse); err != nil {
		return nil, err
	}
	return body.APIKeys, nil
}

// GetAPIKey implements [VaultAdapter].
func (h *httpVaultAdapter) GetAPIKey(ctx context.Context, id string) (models.APIKey, error) {
	var body models.APIKeyResponse
	if err := h.get(ctx, "get api key", "/get/apikey/"+url.PathEscape(id), &body, &body.StatusResponse); err != nil {
		return models.APIKey{}, err
	}
	return body.APIKey, nil
}

// AddAPIKey implements [VaultAdapter].
func (h *httpVaultAdapter) AddAPIKey(ctx context.Context, input models.APIKeyInput) error {
	input.ID = ""
	return h.post(ctx, "add api key", "/post/apikeys", input)
}

// EditAPIKey implements [VaultAdapter].
func (h *httpVaultAdapter) EditAPIKey(ctx context.Context, input models.APIKeyInput) error {
	return h.post(ctx, "edit api key", "/post/edit-apikey", input)
}

// DeleteAPIKey implements [VaultAdapter].
func (h *httpVaultAdapter) DeleteAPIKey(ctx context.Context, id string) error {
	return h.post(ctx, "delete api key", "/post/delete-apikey", models.DeleteRequest{ID: id})
}

// Stats implements [VaultAdapter].
func (h *httpVaultAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var body models.StatsResponse
	if err := h.get(ctx, "get stats", "/get/stats", &body, &body.StatusResponse); err != nil {
		return models.Stats{}, err
	}
	return body.Stats, nil
}

// get sends an authenticated GET and decodes the response into result.
// status must point at the StatusResponse embedded in result.
func (h *httpVaultAdapter) get(ctx context.Context, op, path string, result any, status *models.StatusResponse) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("vault request failed")
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("vault responded with error")
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = mapBodyStatus(*status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// post sends an authenticated JSON POST whose response carries only a
// status and a message.
func (h *httpVaultAdapter) post(ctx context.Context, op, path string, body any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var status models.StatusResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&status).
		Post(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("vault request failed")
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("vault responded with error")
		return fmt.Errorf("%s: %w", op, err)
	}
	return mapBodyStatus(status)
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.IDToken(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
