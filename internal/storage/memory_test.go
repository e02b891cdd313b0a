package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("theme", "dark"))
	value, err := store.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Remove("theme"))
	_, err = store.Get("theme")
	assert.ErrorIs(t, err, ErrNotFound)
}
