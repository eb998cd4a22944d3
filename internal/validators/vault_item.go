package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/amnplus-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned identifier of an existing item.
	FieldID = "id"

	// FieldTitle targets the display title of a password or API key.
	FieldTitle = "title"

	// FieldUsername targets the login of a password.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password before encryption.
	FieldPassword = "password"

	// FieldKey targets the plaintext API key before encryption.
	FieldKey = "key"

	// FieldURL targets the optional site or endpoint URL. An empty URL is
	// valid; a non-empty one must be absolute.
	FieldURL = "url"
)

// VaultItemValidator implements [Validator] for the plaintext forms of
// vault items and for bare item identifiers.
type VaultItemValidator struct {
}

// NewVaultItemValidator constructs a new VaultItemValidator and returns it
// as the Validator interface.
func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.PlainPassword / *models.PlainPassword
//   - models.PlainAPIKey / *models.PlainAPIKey
//   - string (an item id)
//
// Returns ErrUnsupportedType for anything else.
func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlainPassword:
		return v.validatePassword(ctx, value, fields...)
	case *models.PlainPassword:
		return v.validatePassword(ctx, *value, fields...)

	case models.PlainAPIKey:
		return v.validateAPIKey(ctx, value, fields...)
	case *models.PlainAPIKey:
		return v.validateAPIKey(ctx, *value, fields...)

	case string:
		if blank(value) {
			return ErrEmptyID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validatePassword checks a password form.
//
// Default validated fields: Title, Username, Password, URL.
func (v *VaultItemValidator) validatePassword(_ context.Context, p models.PlainPassword, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldPassword, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(p.Title) {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if blank(p.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if p.Password == "" {
				return ErrEmptyPassword
			}
		case FieldURL:
			if err := validateOptionalURL(p.URL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAPIKey checks an API key form.
//
// Default validated fields: Title, Key, URL.
func (v *VaultItemValidator) validateAPIKey(_ context.Context, k models.PlainAPIKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldKey, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(k.Title) {
				return ErrEmptyTitle
			}
		case FieldKey:
			if blank(k.Key) {
				return ErrEmptyKey
			}
		case FieldURL:
			if err := validateOptionalURL(k.URL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateOptionalURL(raw string) error {
	if blank(raw) {
		return nil
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
