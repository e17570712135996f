package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/core"
)

// RunStoreContract verifies that a Store implementation honors the Store
// interface contract. Store packages call it from their tests.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	newRecord := func() Record {
		return Record{
			ID: uuid.New(),
			Definition: config.Definition{
				Nodes: 2,
				Start: 1,
				Edges: []core.Edge{{From: 1, To: 2, Weight: 3}},
			},
			Start:     1,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		rec := newRecord()
		rec.Cursor = 2
		require.NoError(t, store.Save(ctx, rec))

		loaded, err := store.Load(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, loaded.ID)
		assert.Equal(t, rec.Definition, loaded.Definition)
		assert.Equal(t, 2, loaded.Cursor)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		rec := newRecord()
		require.NoError(t, store.Save(ctx, rec))
		rec.Cursor = 5
		require.NoError(t, store.Save(ctx, rec))

		loaded, err := store.Load(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, loaded.Cursor)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := newRecord()
		require.NoError(t, store.Save(ctx, rec))
		require.NoError(t, store.Delete(ctx, rec.ID))

		_, err := store.Load(ctx, rec.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("List", func(t *testing.T) {
		a, b := newRecord(), newRecord()
		require.NoError(t, store.Save(ctx, a))
		require.NoError(t, store.Save(ctx, b))
		defer func() {
			_ = store.Delete(ctx, a.ID)
			_ = store.Delete(ctx, b.ID)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)
	})
}
