package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"LabStore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_LoadMissingFileIsEmpty(t *testing.T) {
	l := NewLocal(filepath.Join(t.TempDir(), "nope", "cache.json"))

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.CurrentItems)
	assert.Empty(t, snap.ArchivedItems)
}

func TestLocal_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab", "cache.json")
	l := NewLocal(path)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	picked := now.Add(time.Hour)
	in := &model.Snapshot{
		CurrentItems: []model.Item{{
			ID: "a", OwnerName: "Ivan", EmailID: "i@x", SSOID: "s",
			ObjectStored: "box", UniqueID: "TAG-1", Location: "A1",
			TimePeriod: 7, DateAdded: now, ExpiryDate: now.Add(7 * 24 * time.Hour),
		}},
		ArchivedItems: []model.Item{{
			ID: "b", UniqueID: "TAG-2", OwnerName: "x", EmailID: "x@x", SSOID: "s",
			ObjectStored: "o", Location: "L", TimePeriod: 1,
			DateAdded: now, ExpiryDate: now.Add(24 * time.Hour), PickupDate: &picked,
		}},
		LastUpdated: now,
	}
	require.NoError(t, l.Save(context.Background(), in))

	out, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out.CurrentItems, 1)
	require.Len(t, out.ArchivedItems, 1)
	assert.Equal(t, "TAG-1", out.CurrentItems[0].UniqueID)
	require.NotNil(t, out.ArchivedItems[0].PickupDate)
	assert.True(t, out.ArchivedItems[0].PickupDate.Equal(picked))
	assert.True(t, out.LastUpdated.Equal(now))

	// повторное сохранение перезаписывает блоб целиком
	require.NoError(t, l.Save(context.Background(), &model.Snapshot{LastUpdated: now}))
	out, err = l.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.CurrentItems)
}

func TestLocal_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewLocal(path).Load(context.Background())
	require.Error(t, err)
}
