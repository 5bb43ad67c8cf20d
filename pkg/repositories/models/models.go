package models

import (
	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/google/uuid"
)

// Game is a stored game. The board is kept in its snapshot form.
type Game struct {
	ID        uuid.UUID       `json:"id"`
	Snapshot  game.Snapshot   `json:"snapshot"`
	Winner    *board.PlayerID `json:"winner,omitempty"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
}

type GameSummary struct {
	ID        uuid.UUID       `json:"id"`
	Height    int             `json:"height"`
	Width     int             `json:"width"`
	Winner    *board.PlayerID `json:"winner,omitempty"`
	UpdatedAt int64           `json:"updated_at"`
}
