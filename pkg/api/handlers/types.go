package handlers

import (
	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/google/uuid"
)

type CreateGameRequest struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

type MoveRequest struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type GameResponse struct {
	ID          uuid.UUID `json:"id"`
	Height      int       `json:"height"`
	Width       int       `json:"width"`
	Rows        []string  `json:"rows"`
	Turn        string    `json:"turn"`
	Winner      string    `json:"winner,omitempty"`
	MovesPlayed int       `json:"moves_played"`
}

type MoveResponse struct {
	Player string        `json:"player"`
	Row    int           `json:"row"`
	Column int           `json:"column"`
	Result string        `json:"result"`
	Game   *GameResponse `json:"game"`
}

type GameSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Winner    string    `json:"winner,omitempty"`
	UpdatedAt int64     `json:"updated_at"`
}

func newGameResponse(gameID uuid.UUID, s *game.Session) *GameResponse {
	b := s.Board()
	resp := &GameResponse{
		ID:          gameID,
		Height:      b.Height(),
		Width:       b.Width(),
		Rows:        b.Rows(),
		Turn:        s.Turn().String(),
		MovesPlayed: s.MovesPlayed(),
	}
	if winner, ok := s.Winner(); ok {
		resp.Winner = winner.String()
	}
	return resp
}

func newMoveResponse(gameID uuid.UUID, s *game.Session, player board.PlayerID, p board.Position, result game.Result) *MoveResponse {
	return &MoveResponse{
		Player: player.String(),
		Row:    p.Row,
		Column: p.Column,
		Result: result.String(),
		Game:   newGameResponse(gameID, s),
	}
}
