package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

func TestMatrixStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMatrixStore()
	m := domain.NewSimilarityMatrix(2)
	m.SetSymmetric(0, 1, 0.4)

	require.NoError(t, store.SaveMatrix(ctx, "fp-1", m))

	loaded, err := store.LoadMatrix(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, 0.4, loaded.At(1, 0))
}

func TestMatrixStore_NotFound(t *testing.T) {
	_, err := NewMatrixStore().LoadMatrix(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
