package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/amnplus-client/internal/logger"
	"github.com/MKhiriev/amnplus-client/models"
)

type sessionRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, identity models.Identity) error {
	query, args, err := buildSaveSessionQuery(identity, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.Identity, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		identity  models.Identity
		expiresAt int64
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&identity.UID,
		&identity.Email,
		&identity.DisplayName,
		&identity.IDToken,
		&identity.RefreshToken,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to load session")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	identity.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	return identity, nil
}

func (s *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
