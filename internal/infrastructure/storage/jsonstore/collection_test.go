package jsonstore

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r record) GetID() int { return r.ID }

func newTestStore(t *testing.T) *Store {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := Open(t.TempDir(), log)
	require.NoError(t, err)
	return store
}

func TestCollectionMissingFileReadsEmpty(t *testing.T) {
	store := newTestStore(t)
	coll := Collection[record](store, "records")

	items, err := coll.All()
	require.NoError(t, err)
	assert.Empty(t, items)

	_, ok, err := coll.Get(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectionPersistAndReload(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := Open(dir, log)
	require.NoError(t, err)

	coll := Collection[record](store, "records")
	err = coll.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: NextID(items), Name: "first"}), nil
	})
	require.NoError(t, err)

	// A fresh store reading the same directory sees the written record.
	reopened, err := Open(dir, log)
	require.NoError(t, err)

	got, ok, err := Collection[record](reopened, "records").Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestCollectionWritesIndentedArray(t *testing.T) {
	store := newTestStore(t)
	coll := Collection[record](store, "records")

	require.NoError(t, coll.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: 1, Name: "only"}), nil
	}))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "records.json"))
	require.NoError(t, err)

	var parsed []record
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 1)
	assert.Contains(t, string(data), "  \"id\": 1")
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID([]record{}))
	assert.Equal(t, 4, NextID([]record{{ID: 1}, {ID: 3}, {ID: 2}}))
	assert.Equal(t, 8, NextID([]record{{ID: 7}, {ID: 2}}))
}

func TestCollectionUpdateErrorLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	coll := Collection[record](store, "records")

	require.NoError(t, coll.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: 1, Name: "keep"}), nil
	}))

	err := coll.Update(func(items []record) ([]record, error) {
		items[0].Name = "mutated"
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, ok, err := coll.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "keep", got.Name)
}

func TestCollectionSameNameReturnsSameInstance(t *testing.T) {
	store := newTestStore(t)

	a := Collection[record](store, "records")
	b := Collection[record](store, "records")
	assert.Same(t, a, b)
}

func TestCollectionConcurrentUpdates(t *testing.T) {
	store := newTestStore(t)
	coll := Collection[record](store, "records")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := coll.Update(func(items []record) ([]record, error) {
				return append(items, record{ID: NextID(items)}), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := coll.All()
	require.NoError(t, err)
	require.Len(t, items, 20)

	seen := make(map[int]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}
