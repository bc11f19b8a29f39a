package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

func TestNewDocumentStore_Empty(t *testing.T) {
	store := NewDocumentStore()

	docs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NotNil(t, docs)
}

func TestDocumentStore_LoadPreservesOrder(t *testing.T) {
	store := NewDocumentStore(
		domain.Document{ID: "b"},
		domain.Document{ID: "a"},
		domain.Document{ID: "c"},
	)

	docs, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestDocumentStore_SaveDocuments_Replaces(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(domain.Document{ID: "old"})

	err := store.SaveDocuments(ctx, []domain.Document{{ID: "new1"}, {ID: "new2"}})
	require.NoError(t, err)

	docs, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new1", docs[0].ID)
}

func TestDocumentStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore(domain.Document{ID: "a"})

	docs, err := store.Load(ctx)
	require.NoError(t, err)
	docs[0].ID = "mutated"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].ID)
}
