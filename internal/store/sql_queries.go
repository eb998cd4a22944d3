// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/amnplus-client/models"
)

const (
	envelopeCacheTable = "envelope_cache"
	sessionsTable      = "sessions"

	// sessionSlot is the primary key of the only stored session row.
	sessionSlot = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeleteCachedQuery(uid string, kind models.ItemKind) (string, []any, error) {
	return psql.
		Delete(envelopeCacheTable).
		Where("owner_uid = ? AND kind = ?", uid, string(kind)).
		ToSql()
}

func buildPurgeCachedQuery(uid string) (string, []any, error) {
	return psql.
		Delete(envelopeCacheTable).
		Where("owner_uid = ?", uid).
		ToSql()
}

// buildInsertCachedQuery inserts records at positions offset, offset+1, ...
func buildInsertCachedQuery(uid string, kind models.ItemKind, records []models.CachedRecord, offset int, at time.Time) (string, []any, error) {
	q := psql.
		Insert(envelopeCacheTable).
		Columns("owner_uid", "kind", "position", "item_id", "payload", "cached_at")

	for i, r := range records {
		q = q.Values(uid, string(kind), offset+i, r.ID, r.Payload, at.UnixMilli())
	}

	return q.ToSql()
}

func buildSelectCachedQuery(uid string, kind models.ItemKind) (string, []any, error) {
	return psql.
		Select("item_id", "payload").
		From(envelopeCacheTable).
		Where("owner_uid = ? AND kind = ?", uid, string(kind)).
		OrderBy("position ASC").
		ToSql()
}

func buildSaveSessionQuery(identity models.Identity, at time.Time) (string, []any, error) {
	return psql.
		Insert(sessionsTable).
		Options("OR REPLACE").
		Columns("slot", "uid", "email", "display_name", "id_token", "refresh_token", "expires_at", "saved_at").
		Values(
			sessionSlot,
			identity.UID,
			identity.Email,
			identity.DisplayName,
			identity.IDToken,
			identity.RefreshToken,
			identity.ExpiresAt.UnixMilli(),
			at.UnixMilli(),
		).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return psql.
		Select("uid", "email", "display_name", "id_token", "refresh_token", "expires_at").
		From(sessionsTable).
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return psql.
		Delete(sessionsTable).
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
}
