package api

import (
	"testing"
	"time"

	"github.com/color-game/schemefinder/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreSweep(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	repo := palette.NewRepository()
	stale := store.Create(repo)
	now = now.Add(20 * time.Minute)
	fresh := store.Create(repo)

	removed := store.Sweep(10 * time.Minute)
	assert.Equal(t, 1, removed)

	_, ok := store.Get(stale.ID)
	assert.False(t, ok)

	got, ok := store.Get(fresh.ID)
	require.True(t, ok)
	assert.Same(t, fresh, got)
}

func TestSessionStoreGetTouches(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	session := store.Create(nil)
	now = now.Add(time.Hour)
	_, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, now, session.LastSeen)

	assert.Zero(t, store.Sweep(30*time.Minute))
}

func TestSessionsShareRepository(t *testing.T) {
	store := NewSessionStore()
	repo := palette.NewRepository()
	a := store.Create(repo)
	b := store.Create(repo)

	require.NoError(t, repo.Load([][]string{{"ff0000"}}))
	assert.Len(t, a.Finder.MatchingSchemes(), 1)
	assert.Len(t, b.Finder.MatchingSchemes(), 1)
	assert.NotEqual(t, a.ID, b.ID)
}
