package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, height, width int) *game.Session {
	t.Helper()
	s, err := game.New(height, width)
	require.NoError(t, err)
	return s
}

func TestInMemoryStateManager_AddExistsRemove(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()
	id := uuid.New()

	assert.False(t, m.Exists(ctx, id))
	require.NoError(t, m.Add(ctx, id, newSession(t, 3, 3), 1))
	assert.True(t, m.Exists(ctx, id))

	err := m.Add(ctx, id, newSession(t, 3, 3), 1)
	assert.ErrorIs(t, err, ErrGameExists)
	assert.Error(t, m.Add(ctx, uuid.New(), nil, 1))

	require.NoError(t, m.Remove(ctx, id))
	assert.False(t, m.Exists(ctx, id))
	assert.ErrorIs(t, m.Remove(ctx, id), ErrGameNotFound)
}

func TestInMemoryStateManager_UpdateMarksChanged(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()
	id := uuid.New()
	require.NoError(t, m.Add(ctx, id, newSession(t, 2, 2), 100))

	changed, err := m.Changed(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed)

	err = m.View(ctx, id, func(s *game.Session) error {
		assert.Equal(t, board.PlayerA, s.Turn())
		return nil
	})
	require.NoError(t, err)
	changed, err = m.Changed(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed, "viewing does not mark a session changed")

	failed := errors.New("rejected")
	err = m.Update(ctx, id, func(s *game.Session) error { return failed })
	assert.ErrorIs(t, err, failed)
	changed, err = m.Changed(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed, "failed updates do not mark a session changed")

	err = m.Update(ctx, id, func(s *game.Session) error {
		_, err := s.Play(board.PlayerA, board.Position{Row: 0, Column: 0})
		return err
	})
	require.NoError(t, err)

	changed, err = m.Changed(ctx)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, id, changed[0].ID)
	assert.Equal(t, int64(100), changed[0].CreatedAt)
	assert.Equal(t, []string{"O.", ".."}, changed[0].Snapshot.Rows)
	assert.Equal(t, board.PlayerB, changed[0].Snapshot.Turn)
	assert.Nil(t, changed[0].Winner)

	changed, err = m.Changed(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestInMemoryStateManager_unknownGame(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()
	noop := func(s *game.Session) error { return nil }
	assert.ErrorIs(t, m.Update(ctx, uuid.New(), noop), ErrGameNotFound)
	assert.ErrorIs(t, m.View(ctx, uuid.New(), noop), ErrGameNotFound)
}

func TestInMemoryStateManager_concurrentUpdates(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()
	id := uuid.New()
	require.NoError(t, m.Add(ctx, id, newSession(t, 10, 10), 1))

	var wg sync.WaitGroup
	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for c := 0; c < 10; c++ {
				m.Update(ctx, id, func(s *game.Session) error {
					if s.Over() {
						return game.ErrGameOver
					}
					_, err := s.Play(s.Turn(), board.Position{Row: r, Column: c})
					return err
				})
			}
		}(r)
	}
	wg.Wait()

	err := m.View(ctx, id, func(s *game.Session) error {
		b := s.Board()
		assert.Equal(t, s.MovesPlayed(), b.Size()-b.CountEmpty())
		return nil
	})
	require.NoError(t, err)
}

func TestGameModel(t *testing.T) {
	s := newSession(t, 1, 1)
	_, err := s.Play(board.PlayerA, board.Position{Row: 0, Column: 0})
	require.NoError(t, err)

	id := uuid.New()
	g := GameModel(id, s, 7)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, int64(7), g.CreatedAt)
	require.NotNil(t, g.Winner)
	assert.Equal(t, board.PlayerA, *g.Winner)
}
