package audit

import (
	"testing"

	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecordPersistsEntry(t *testing.T) {
	client := database.OpenTest(t)
	recorder := New(client, zap.NewNop())

	recorder.Record(t.Context(), Entry{
		Action:     "generate_campaign",
		Status:     "success",
		Message:    "Campaign created with 3 review tasks",
		EntityType: "campaign",
		EntityID:   "abc-123",
		Details:    map[string]any{"reviews_created": 3},
	})

	entries, err := recorder.ListRecent(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, LevelInfo, entry.Level)
	assert.Equal(t, "generate_campaign", entry.Action)
	assert.Equal(t, "success", entry.Status)
	assert.Equal(t, "campaign", entry.EntityType)
	assert.Equal(t, "abc-123", entry.EntityID)
	assert.EqualValues(t, 3, entry.Details["reviews_created"])
}

func TestRecordSkipsEmptyAction(t *testing.T) {
	client := database.OpenTest(t)
	recorder := New(client, zap.NewNop())

	recorder.Record(t.Context(), Entry{Status: "success", Message: "orphan"})

	entries, err := recorder.ListRecent(t.Context(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListRecentOrdersNewestFirst(t *testing.T) {
	client := database.OpenTest(t)
	recorder := New(client, zap.NewNop())

	for _, status := range []string{"start", "processing", "success"} {
		recorder.Record(t.Context(), Entry{
			Action:  "remediate_access",
			Status:  status,
			Message: status,
		})
	}

	entries, err := recorder.ListRecent(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Timestamp.Before(entries[1].Timestamp))
}
