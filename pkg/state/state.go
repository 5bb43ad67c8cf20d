package state

import (
	"context"
	"errors"

	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// StateManager provides shared access to the active game sessions.
// Implementations must be thread-safe.
type StateManager interface {
	// Add starts tracking a session under gameID.
	Add(ctx context.Context, gameID uuid.UUID, s *game.Session, createdAt int64) error
	Exists(ctx context.Context, gameID uuid.UUID) bool
	// Update runs fn with exclusive access to the session. The session is
	// marked changed when fn returns nil.
	Update(ctx context.Context, gameID uuid.UUID, fn func(s *game.Session) error) error
	// View runs fn with exclusive access to the session without marking it changed.
	View(ctx context.Context, gameID uuid.UUID, fn func(s *game.Session) error) error
	// Changed returns the stored form of every session changed since the
	// previous call and clears their changed marks.
	Changed(ctx context.Context) ([]*models.Game, error)
	Remove(ctx context.Context, gameID uuid.UUID) error
}

// GameModel returns the stored form of a session.
func GameModel(gameID uuid.UUID, s *game.Session, createdAt int64) *models.Game {
	g := &models.Game{
		ID:        gameID,
		Snapshot:  s.Snapshot(),
		CreatedAt: createdAt,
	}
	if winner, ok := s.Winner(); ok {
		g.Winner = &winner
	}
	return g
}
