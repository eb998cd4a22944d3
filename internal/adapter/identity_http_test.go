package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIDToken(t *testing.T, uid, email string, exp time.Time) string {
	t.Helper()
	claims := utils.IDTokenClaims{
		UserID: uid,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-key"))
	require.NoError(t, err)
	return s
}

func newTestIdentity(t *testing.T, handler http.Handler) *httpIdentityAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPIdentityAdapter(IdentityConfig{
		AccountsAddress: srv.URL,
		TokenAddress:    srv.URL,
		APIKey:          "web-key",
		Timeout:         5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpIdentityAdapter)
}

func firebaseFailure(t *testing.T, w http.ResponseWriter, message string) {
	t.Helper()
	body := map[string]any{"error": map[string]any{"code": 400, "message": message}}
	writeJSON(t, w, http.StatusBadRequest, body)
}

func TestSignIn_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := testIDToken(t, "uid-1", "a@example.com", exp)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts:signInWithPassword", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "web-key", r.URL.Query().Get("key"))

		var req passwordAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@example.com", req.Email)
		assert.Equal(t, "secret", req.Password)
		assert.True(t, req.ReturnSecureToken)

		writeJSON(t, w, http.StatusOK, passwordAuthResponse{
			LocalID:      "uid-1",
			Email:        "a@example.com",
			DisplayName:  "Alice",
			IDToken:      idToken,
			RefreshToken: "refresh-1",
			ExpiresIn:    "3600",
		})
	})

	a := newTestIdentity(t, mux)
	got, err := a.SignIn(context.Background(), "a@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UID)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, "Alice", got.DisplayName)
	assert.Equal(t, idToken, got.IDToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.True(t, got.ExpiresAt.Equal(exp))
}

func TestSignUp_Success(t *testing.T) {
	idToken := testIDToken(t, "uid-2", "b@example.com", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts:signUp", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, passwordAuthResponse{
			LocalID: "uid-2", IDToken: idToken, RefreshToken: "refresh-2", ExpiresIn: "3600",
		})
	})

	a := newTestIdentity(t, mux)
	got, err := a.SignUp(context.Background(), "b@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "uid-2", got.UID)
	assert.Equal(t, "b@example.com", got.Email)
}

func TestPasswordAuth_MalformedIDToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts:signInWithPassword", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, passwordAuthResponse{LocalID: "uid", IDToken: "garbage"})
	})

	a := newTestIdentity(t, mux)
	_, err := a.SignIn(context.Background(), "a@example.com", "secret")

	assert.ErrorIs(t, err, utils.ErrInvalidIDToken)
}

func TestSignIn_ProviderErrors(t *testing.T) {
	tests := []struct {
		message string
		want    error
	}{
		{"EMAIL_NOT_FOUND", ErrInvalidCredentials},
		{"INVALID_PASSWORD", ErrInvalidCredentials},
		{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredentials},
		{"EMAIL_EXISTS", ErrEmailExists},
		{"INVALID_EMAIL", ErrInvalidEmail},
		{"WEAK_PASSWORD : Password should be at least 6 characters", ErrWeakPassword},
		{"USER_DISABLED", ErrUserDisabled},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access blocked", ErrTooManyAttempts},
		{"OPERATION_NOT_ALLOWED", ErrIdentityProvider},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/accounts:signInWithPassword", func(w http.ResponseWriter, r *http.Request) {
				firebaseFailure(t, w, tt.message)
			})

			a := newTestIdentity(t, mux)
			_, err := a.SignIn(context.Background(), "a@example.com", "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignIn_NonJSONFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts:signInWithPassword", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	a := newTestIdentity(t, mux)
	_, err := a.SignIn(context.Background(), "a@example.com", "x")

	assert.ErrorIs(t, err, ErrIdentityProvider)
	assert.Contains(t, err.Error(), "502")
}

func TestRefresh_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := testIDToken(t, "uid-1", "a@example.com", exp)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "web-key", r.URL.Query().Get("key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))

		writeJSON(t, w, http.StatusOK, refreshResponse{
			IDToken: idToken, RefreshToken: "refresh-2", ExpiresIn: "3600", UserID: "uid-1",
		})
	})

	a := newTestIdentity(t, mux)
	got, err := a.Refresh(context.Background(), "refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UID)
	assert.Equal(t, "refresh-2", got.RefreshToken)
	assert.True(t, got.ExpiresAt.Equal(exp))
}

func TestRefresh_Revoked(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/token", func(w http.ResponseWriter, r *http.Request) {
		firebaseFailure(t, w, "TOKEN_EXPIRED")
	})

	a := newTestIdentity(t, mux)
	_, err := a.Refresh(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestIdentityFromTokens_ExpiresInFallback(t *testing.T) {
	a := &httpIdentityAdapter{now: func() time.Time { return time.Unix(1000, 0) }}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "uid"}).
		SignedString([]byte("k"))
	require.NoError(t, err)

	got, err := a.identityFromTokens(token, "r", "60")

	require.NoError(t, err)
	assert.Equal(t, "uid", got.UID)
	assert.Equal(t, time.Unix(1060, 0), got.ExpiresAt)
}
