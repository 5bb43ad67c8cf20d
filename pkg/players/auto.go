package players

import (
	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
)

// AutoMover picks moves with a fixed per-player formula. It does not play well.
type AutoMover struct{}

func NewAutoMover() *AutoMover {
	return &AutoMover{}
}

// NextMove returns the formula move for player and advances the player's
// move counter stored in the session.
func (m *AutoMover) NextMove(s *game.Session, player board.PlayerID) (board.Position, error) {
	p, n, err := FormulaMove(s.Board(), player, s.MoveNumber(player))
	if err != nil {
		return board.Position{}, err
	}
	s.SetMoveNumber(player, n)
	return p, nil
}

// FormulaMove walks the formula sequence from move number n until it lands on
// an empty cell. It returns that cell and the move number to resume from.
func FormulaMove(b *board.Board, player board.PlayerID, n int) (board.Position, int, error) {
	if b.Full() {
		return board.Position{}, n, ErrBoardFull
	}
	height, width := b.Height(), b.Width()
	m := width
	if height > width {
		m = height
	}
	for {
		t := formula(player, n)
		p := board.Position{
			Row:    (t / m) % height,
			Column: t % width,
		}
		n++
		if b.At(p) == board.Empty {
			return p, n, nil
		}
	}
}

func formula(player board.PlayerID, n int) int {
	if player == board.PlayerA {
		return n*9%1000037 + 17
	}
	return n*7%1000213 + 81
}
