package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/amnplus-client/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx vault response into a sentinel error. The
// backend reports failures as {"detail": "..."}; the detail becomes the error
// message.
//
// The backend also rewraps its own 4xx errors into a 500 whose detail starts
// with the original code ("404: Password not found"). Such a detail is mapped
// by the embedded code instead of the status line.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	code := resp.StatusCode()
	if code == http.StatusInternalServerError {
		if embedded, rest, ok := embeddedStatus(detail); ok {
			code, detail = embedded, rest
		}
	}

	return statusError(code, detail)
}

// mapBodyStatus checks the in-body status of a 2xx response.
func mapBodyStatus(status models.StatusResponse) error {
	if status.Status == 0 || status.Status == http.StatusOK {
		return nil
	}

	err := statusError(status.Status, status.Message)
	return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
}

func statusError(code int, detail string) error {
	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		sentinel = ErrServiceUnavailable
	default:
		if detail == "" {
			detail = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, detail)
	}

	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

func errorDetail(body []byte) string {
	var ed models.ErrorDetail
	if err := json.Unmarshal(body, &ed); err == nil && ed.Detail != "" {
		return strings.TrimSpace(ed.Detail)
	}
	return strings.TrimSpace(string(body))
}

// embeddedStatus splits "404: Password not found" into 404 and the message.
func embeddedStatus(detail string) (int, string, bool) {
	head, rest, found := strings.Cut(detail, ":")
	if !found || len(head) != 3 {
		return 0, "", false
	}
	code, err := strconv.Atoi(head)
	if err != nil || code < 400 || code > 599 {
		return 0, "", false
	}
	return code, strings.TrimSpace(rest), true
}

// firebaseError is the error body of the identity provider.
type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mapIdentityError turns a non-2xx identity provider response into a
// sentinel. Provider messages look like "EMAIL_EXISTS" or
// "WEAK_PASSWORD : Password should be at least 6 characters".
func mapIdentityError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var fe firebaseError
	if err := json.Unmarshal(resp.Body(), &fe); err != nil || fe.Error.Message == "" {
		return fmt.Errorf("%w: http %d", ErrIdentityProvider, resp.StatusCode())
	}

	code, _, _ := strings.Cut(fe.Error.Message, " ")
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "MISSING_PASSWORD":
		return ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return ErrInvalidEmail
	case "WEAK_PASSWORD":
		return fmt.Errorf("%w: %s", ErrWeakPassword, fe.Error.Message)
	case "TOKEN_EXPIRED", "INVALID_REFRESH_TOKEN", "USER_NOT_FOUND", "MISSING_REFRESH_TOKEN":
		return ErrTokenRevoked
	case "USER_DISABLED":
		return ErrUserDisabled
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return ErrTooManyAttempts
	default:
		return fmt.Errorf("%w: %s", ErrIdentityProvider, fe.Error.Message)
	}
}

// transportError marks a request that never produced a response.
func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
