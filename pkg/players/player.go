package players

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
)

var (
	ErrInvalidType = errors.New("invalid player type")
	ErrInvalidMove = errors.New("invalid move")
	ErrEOF         = errors.New("EOF from user")
	ErrBoardFull   = errors.New("no free position left")
)

// Kind selects how a player chooses moves.
type Kind byte

const (
	KindAuto   Kind = 'a'
	KindManual Kind = 'm'
)

// ParseKind parses the command line player type "a" or "m".
func ParseKind(s string) (Kind, error) {
	switch s {
	case string(KindAuto):
		return KindAuto, nil
	case string(KindManual):
		return KindManual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Mover chooses the next move for a player. The returned position is on the
// board and empty; the caller applies it to the session.
type Mover interface {
	NextMove(s *game.Session, player board.PlayerID) (board.Position, error)
}
