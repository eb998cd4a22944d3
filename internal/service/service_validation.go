package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/amnplus-client/internal/validators"
	"github.com/MKhiriev/amnplus-client/models"
)

// PasswordValidationService rejects incomplete input before the wrapped
// [PasswordService] encrypts anything or touches the network.
type PasswordValidationService struct {
	inner     PasswordService
	validator validators.Validator
}

func NewPasswordValidationService() *PasswordValidationService {
	return &PasswordValidationService{validator: validators.NewVaultItemValidator()}
}

// Wrap sets the decorated service and returns the decorator.
func (v *PasswordValidationService) Wrap(inner PasswordService) PasswordService {
	v.inner = inner
	return v
}

func (v *PasswordValidationService) List(ctx context.Context) (models.ListResult[models.DecryptedPassword], error) {
	return v.inner.List(ctx)
}

func (v *PasswordValidationService) Get(ctx context.Context, id string) (models.DecryptedPassword, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.DecryptedPassword{}, fmt.Errorf("invalid password id: %w", err)
	}
	return v.inner.Get(ctx, id)
}

func (v *PasswordValidationService) Add(ctx context.Context, password models.PlainPassword) error {
	if err := v.validator.Validate(ctx, password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return v.inner.Add(ctx, password)
}

func (v *PasswordValidationService) Edit(ctx context.Context, id string, password models.PlainPassword) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("invalid password id: %w", err)
	}
	if err := v.validator.Validate(ctx, password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return v.inner.Edit(ctx, id, password)
}

func (v *PasswordValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("invalid password id: %w", err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *PasswordValidationService) Search(items []models.DecryptedPassword, term string) []models.DecryptedPassword {
	return v.inner.Search(items, term)
}

// APIKeyValidationService is the [APIKeyService] counterpart of
// [PasswordValidationService].
type APIKeyValidationService struct {
	inner     APIKeyService
	validator validators.Validator
}

func NewAPIKeyValidationService() *APIKeyValidationService {
	return &APIKeyValidationService{validator: validators.NewVaultItemValidator()}
}

// Wrap sets the decorated service and returns the decorator.
func (v *APIKeyValidationService) Wrap(inner APIKeyService) APIKeyService {
	v.inner = inner
	return v
}

func (v *APIKeyValidationService) List(ctx context.Context, probe bool) (models.ListResult[models.DecryptedAPIKey], error) {
	return v.inner.List(ctx, probe)
}

func (v *APIKeyValidationService) Get(ctx context.Context, id string) (models.DecryptedAPIKey, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.DecryptedAPIKey{}, fmt.Errorf("invalid api key id: %w", err)
	}
	return v.inner.Get(ctx, id)
}

func (v *APIKeyValidationService) Add(ctx context.Context, key models.PlainAPIKey) error {
	if err := v.validator.Validate(ctx, key); err != nil {
		return fmt.Errorf("invalid api key: %w", err)
	}
	return v.inner.Add(ctx, key)
}

func (v *APIKeyValidationService) Edit(ctx context.Context, id string, key models.PlainAPIKey) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("invalid api key id: %w", err)
	}
	if err := v.validator.Validate(ctx, key); err != nil {
		return fmt.Errorf("invalid api key: %w", err)
	}
	return v.inner.Edit(ctx, id, key)
}

func (v *APIKeyValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("invalid api key id: %w", err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *APIKeyValidationService) Search(items []models.DecryptedAPIKey, term string) []models.DecryptedAPIKey {
	return v.inner.Search(items, term)
}

func (v *APIKeyValidationService) Probe(ctx context.Context, key models.DecryptedAPIKey) models.APIKeyStatus {
	return v.inner.Probe(ctx, key)
}
