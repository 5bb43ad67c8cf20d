package messages

import (
	"time"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/google/uuid"
)

// GameUpdate is pushed to game watchers after every move. The first update a
// watcher receives carries the current board and no move.
type GameUpdate struct {
	GameID    uuid.UUID
	Timestamp int64
	// Player is the player who moved, or the player to move when Move is nil.
	Player board.PlayerID
	Move   *board.Position
	Result game.Result
	Winner *board.PlayerID
	Height int
	Width  int
	// Cells holds the board symbols in row-major order.
	Cells []byte
}

// NewGameUpdate describes the session after player moved to p.
func NewGameUpdate(gameID uuid.UUID, s *game.Session, player board.PlayerID, p board.Position, result game.Result) *GameUpdate {
	update := newGameUpdate(gameID, s)
	update.Player = player
	update.Move = &p
	update.Result = result
	return update
}

// NewGameStateUpdate describes the session without a move.
func NewGameStateUpdate(gameID uuid.UUID, s *game.Session) *GameUpdate {
	update := newGameUpdate(gameID, s)
	update.Player = s.Turn()
	return update
}

func newGameUpdate(gameID uuid.UUID, s *game.Session) *GameUpdate {
	b := s.Board()
	cells := make([]byte, 0, b.Size())
	for _, row := range b.Rows() {
		cells = append(cells, row...)
	}
	update := &GameUpdate{
		GameID:    gameID,
		Timestamp: time.Now().UnixMilli(),
		Result:    game.ResultContinue,
		Height:    b.Height(),
		Width:     b.Width(),
		Cells:     cells,
	}
	if winner, ok := s.Winner(); ok {
		update.Winner = &winner
	}
	return update
}

// Rows splits Cells into board rows.
func (u *GameUpdate) Rows() []string {
	if u.Width <= 0 {
		return nil
	}
	rows := make([]string, 0, u.Height)
	for i := 0; i+u.Width <= len(u.Cells); i += u.Width {
		rows = append(rows, string(u.Cells[i:i+u.Width]))
	}
	return rows
}
