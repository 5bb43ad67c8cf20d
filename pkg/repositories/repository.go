package repositories

import (
	"context"

	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/google/uuid"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveGame inserts the game or replaces the stored board of an existing one.
	SaveGame(ctx context.Context, game *models.Game) error
	// LoadGame returns ErrNotFound if no game has the given id.
	LoadGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	// ListGames returns all stored games, most recently updated first.
	ListGames(ctx context.Context) ([]*models.GameSummary, error)
	DeleteGame(ctx context.Context, gameID uuid.UUID) error
}
