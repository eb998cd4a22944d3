package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/utils"
	"github.com/MKhiriev/amnplus-client/models"
)

const (
	signInPath  = "/v1/accounts:signInWithPassword"
	signUpPath  = "/v1/accounts:signUp"
	refreshPath = "/v1/token"
)

// IdentityConfig holds the identity provider endpoints.
type IdentityConfig struct {
	// AccountsAddress serves sign-in and sign-up.
	AccountsAddress string
	// TokenAddress serves refresh token exchange.
	TokenAddress string
	// APIKey is the public web API key of the identity project.
	APIKey string

	Timeout time.Duration
}

type httpIdentityAdapter struct {
	accounts *utils.HTTPClient
	tokens   *utils.HTTPClient
	apiKey   string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPIdentityAdapter constructs the REST implementation of
// [IdentityAdapter].
func NewHTTPIdentityAdapter(cfg IdentityConfig, logger *logger.Logger) (IdentityAdapter, error) {
	accountsURL, err := normalizeBaseURL(cfg.AccountsAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid identity address: %w", err)
	}
	tokenURL, err := normalizeBaseURL(cfg.TokenAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid token address: %w", err)
	}

	return &httpIdentityAdapter{
		accounts: utils.NewHTTPClient(accountsURL, cfg.Timeout),
		tokens:   utils.NewHTTPClient(tokenURL, cfg.Timeout),
		apiKey:   cfg.APIKey,
		now:      time.Now,
		logger:   logger,
	}, nil
}

type passwordAuthRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type passwordAuthResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

// SignIn implements [IdentityAdapter].
func (h *httpIdentityAdapter) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	return h.passwordAuth(ctx, "sign in", signInPath, email, password)
}

// SignUp implements [IdentityAdapter].
func (h *httpIdentityAdapter) SignUp(ctx context.Context, email, password string) (models.Identity, error) {
	return h.passwordAuth(ctx, "sign up", signUpPath, email, password)
}

func (h *httpIdentityAdapter) passwordAuth(ctx context.Context, op, path, email, password string) (models.Identity, error) {
	var body passwordAuthResponse
	resp, err := h.accounts.R().
		SetContext(ctx).
		SetQueryParam("key", h.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(passwordAuthRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&body).
		Post(path)
	if err != nil {
		return models.Identity{}, transportError(op, err)
	}
	if err = mapIdentityError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("identity provider rejected request")
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	identity, err := h.identityFromTokens(body.IDToken, body.RefreshToken, body.ExpiresIn)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if identity.UID == "" {
		identity.UID = body.LocalID
	}
	if identity.Email == "" {
		identity.Email = body.Email
	}
	if identity.DisplayName == "" {
		identity.DisplayName = body.DisplayName
	}
	return identity, nil
}

// Refresh implements [IdentityAdapter].
func (h *httpIdentityAdapter) Refresh(ctx context.Context, refreshToken string) (models.Identity, error) {
	const op = "refresh token"

	var body refreshResponse
	resp, err := h.tokens.R().
		SetContext(ctx).
		SetQueryParam("key", h.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		SetResult(&body).
		Post(refreshPath)
	if err != nil {
		return models.Identity{}, transportError(op, err)
	}
	if err = mapIdentityError(resp); err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	identity, err := h.identityFromTokens(body.IDToken, body.RefreshToken, body.ExpiresIn)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if identity.UID == "" {
		identity.UID = body.UserID
	}
	return identity, nil
}

// identityFromTokens reads uid, email and expiry from the ID token claims.
// The provider's expiresIn is used when the token carries no exp claim.
func (h *httpIdentityAdapter) identityFromTokens(idToken, refreshToken, expiresIn string) (models.Identity, error) {
	claims, err := utils.ParseIDTokenClaims(idToken)
	if err != nil {
		return models.Identity{}, err
	}

	identity := models.Identity{
		UID:          claims.UID(),
		Email:        claims.Email,
		DisplayName:  claims.Name,
		IDToken:      idToken,
		RefreshToken: refreshToken,
	}

	switch {
	case claims.ExpiresAt != nil:
		identity.ExpiresAt = claims.ExpiresAt.Time
	default:
		seconds, err := strconv.Atoi(expiresIn)
		if err != nil {
			seconds = 0
		}
		identity.ExpiresAt = h.now().Add(time.Duration(seconds) * time.Second)
	}

	return identity, nil
}
