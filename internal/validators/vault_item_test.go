// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/amnplus-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPassword() models.PlainPassword {
	return models.PlainPassword{
		Title:    "GitHub",
		Username: "octocat",
		Password: "hunter2",
		URL:      "https://github.com",
	}
}

func validAPIKey() models.PlainAPIKey {
	return models.PlainAPIKey{
		Title: "OpenAI",
		Key:   "sk-test",
		URL:   "https://api.example.com/v1/models",
	}
}

func TestNewVaultItemValidator(t *testing.T) {
	v := NewVaultItemValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	p := validPassword()
	k := validAPIKey()

	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.NoError(t, v.Validate(ctx, k))
	assert.NoError(t, v.Validate(ctx, &k))
	assert.NoError(t, v.Validate(ctx, "abc123"))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "  "), ErrEmptyID)
}

func TestValidate_Password(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.PlainPassword)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.PlainPassword) {}},
		{name: "empty title", mutate: func(p *models.PlainPassword) { p.Title = " " }, wantErr: ErrEmptyTitle},
		{name: "empty username", mutate: func(p *models.PlainPassword) { p.Username = "" }, wantErr: ErrEmptyUsername},
		{name: "empty password", mutate: func(p *models.PlainPassword) { p.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "whitespace password is accepted", mutate: func(p *models.PlainPassword) { p.Password = "   " }},
		{name: "no url", mutate: func(p *models.PlainPassword) { p.URL = "" }},
		{name: "relative url", mutate: func(p *models.PlainPassword) { p.URL = "github.com" }, wantErr: ErrInvalidURL},
		{
			name:   "scoped to title ignores username",
			mutate: func(p *models.PlainPassword) { p.Username = "" },
			fields: []string{FieldTitle},
		},
		{name: "unknown field", mutate: func(*models.PlainPassword) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPassword()
			tt.mutate(&p)

			err := v.Validate(ctx, p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_APIKey(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.PlainAPIKey)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.PlainAPIKey) {}},
		{name: "empty title", mutate: func(k *models.PlainAPIKey) { k.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "empty key", mutate: func(k *models.PlainAPIKey) { k.Key = "\t" }, wantErr: ErrEmptyKey},
		{name: "description optional", mutate: func(k *models.PlainAPIKey) { k.Description = "" }},
		{name: "bad url", mutate: func(k *models.PlainAPIKey) { k.URL = "::nope" }, wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validAPIKey()
			tt.mutate(&k)

			err := v.Validate(ctx, k)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMissingFieldErrorsShareSentinel(t *testing.T) {
	for _, err := range []error{ErrEmptyID, ErrEmptyTitle, ErrEmptyUsername, ErrEmptyPassword, ErrEmptyKey} {
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.NotErrorIs(t, ErrInvalidURL, ErrMissingFields)
}
