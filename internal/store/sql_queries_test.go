package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/amnplus-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertCachedQuery_Placeholders(t *testing.T) {
	at := time.Unix(100, 0)
	records := []models.CachedRecord{{ID: "a", Payload: []byte("1")}, {ID: "b", Payload: []byte("2")}}

	query, args, err := buildInsertCachedQuery("u", models.KindPassword, records, 10, at)
	require.NoError(t, err)

	// sqlite uses ? placeholders, never $N
	assert.NotContains(t, query, "$")
	assert.Equal(t, 12, strings.Count(query, "?"))
	require.Len(t, args, 12)
	assert.Equal(t, 10, args[2])
	assert.Equal(t, 11, args[8])
	assert.Equal(t, at.UnixMilli(), args[5])
}

func TestBuildSelectCachedQuery_Ordered(t *testing.T) {
	query, args, err := buildSelectCachedQuery("u", models.KindAPIKey)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from envelope_cache")
	assert.Contains(t, q, "order by position asc")
	assert.Equal(t, []any{"u", "apikey"}, args)
}

func TestBuildSaveSessionQuery_Replaces(t *testing.T) {
	query, args, err := buildSaveSessionQuery(models.Identity{UID: "u"}, time.Unix(0, 0))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT OR REPLACE INTO sessions"))
	require.Len(t, args, 8)
	assert.Equal(t, sessionSlot, args[0])
}

func TestBuildSessionSlotQueries(t *testing.T) {
	for _, build := range []func() (string, []any, error){buildLoadSessionQuery, buildDeleteSessionQuery} {
		query, args, err := build()
		require.NoError(t, err)
		assert.Contains(t, query, "slot = ?")
		assert.Equal(t, []any{sessionSlot}, args)
	}
}
