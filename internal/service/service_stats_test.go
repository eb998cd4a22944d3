package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/internal/mock"
	"github.com/MKhiriev/amnplus-client/models"
)

func TestStatsService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultAdapter(ctrl)
	svc := NewStatsService(vault)
	ctx := context.Background()

	vault.EXPECT().Stats(ctx).Return(models.Stats{TotalPasswords: 3, TotalAPIKeys: 1}, nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPasswords)
	assert.Equal(t, 1, stats.TotalAPIKeys)
}

func TestStatsService_Stats_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultAdapter(ctrl)
	svc := NewStatsService(vault)
	ctx := context.Background()

	vault.EXPECT().Stats(ctx).Return(models.Stats{}, fmt.Errorf("get stats: %w: User not found", adapter.ErrNotFound))

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
