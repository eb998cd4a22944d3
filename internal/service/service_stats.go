package service

import (
	"context"

	"github.com/MKhiriev/amnplus-client/internal/adapter"
	"github.com/MKhiriev/amnplus-client/models"
)

type statsService struct {
	vault adapter.VaultAdapter
}

func NewStatsService(vault adapter.VaultAdapter) StatsService {
	return &statsService{vault: vault}
}

func (s *statsService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := s.vault.Stats(ctx)
	if err != nil {
		return models.Stats{}, mapAdapterError(err)
	}
	return stats, nil
}
