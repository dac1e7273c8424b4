package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggle_BeginCommit(t *testing.T) {
	toggle := NewFavoriteToggle(false)

	phase, err := toggle.Begin()
	require.NoError(t, err)
	assert.Equal(t, TogglePendingAdd, phase)
	assert.True(t, toggle.Favorited())

	toggle.Commit()
	assert.Equal(t, ToggleSettled, toggle.Phase())
	assert.True(t, toggle.Favorited())

	phase, err = toggle.Begin()
	require.NoError(t, err)
	assert.Equal(t, TogglePendingRemove, phase)
	assert.False(t, toggle.Favorited())
}

func TestFavoriteToggle_RollbackRestoresPreviousState(t *testing.T) {
	for _, initial := range []bool{true, false} {
		toggle := NewFavoriteToggle(initial)

		_, err := toggle.Begin()
		require.NoError(t, err)
		assert.Equal(t, !initial, toggle.Favorited())

		toggle.Rollback()
		assert.Equal(t, initial, toggle.Favorited())
		assert.Equal(t, ToggleSettled, toggle.Phase())
	}
}

func TestFavoriteToggle_BeginWhilePending(t *testing.T) {
	toggle := NewFavoriteToggle(true)

	_, err := toggle.Begin()
	require.NoError(t, err)

	phase, err := toggle.Begin()
	require.ErrorIs(t, err, ErrTogglePending)
	assert.Equal(t, TogglePendingRemove, phase)
	assert.False(t, toggle.Favorited())
}

func TestFavoriteToggle_RollbackWhenSettledIsNoop(t *testing.T) {
	toggle := NewFavoriteToggle(true)
	toggle.Rollback()

	assert.True(t, toggle.Favorited())
	assert.Equal(t, "settled", toggle.Phase().String())
}
