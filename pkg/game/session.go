package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/connectivity"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not this player's turn")
)

// Result is the outcome of a single move.
type Result int

const (
	ResultContinue Result = iota
	ResultWin
)

func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultWin:
		return "win"
	default:
		return "unknown"
	}
}

// Session is a single game: the board, the connectivity tracker for both
// players, whose turn it is, and each player's automated move counter.
// A Session is not safe for concurrent use.
type Session struct {
	board       *board.Board
	tracker     *connectivity.Tracker
	turn        board.PlayerID
	moveNumbers [2]int
	winner      *board.PlayerID
	movesPlayed int
}

// New creates a session on an empty height x width board. PlayerA moves first.
func New(height, width int) (*Session, error) {
	b, err := board.NewBoard(height, width)
	if err != nil {
		return nil, err
	}
	return &Session{
		board:   b,
		tracker: connectivity.NewTracker(b),
		turn:    board.PlayerA,
	}, nil
}

// Snapshot is the externally stored form of a session.
type Snapshot struct {
	Turn        board.PlayerID
	MoveNumbers [2]int
	Rows        []string
}

// MovesPlayed counts the stones on the stored board.
func (s Snapshot) MovesPlayed() int {
	n := 0
	for _, row := range s.Rows {
		n += len(row) - strings.Count(row, string(board.Empty.Symbol()))
	}
	return n
}

// Load creates a session from a stored board and derives connectivity from
// the stones already on it. A spanning chain present at load time is not
// reported as a win; the game continues from the stored turn.
func Load(snapshot Snapshot) (*Session, error) {
	if !snapshot.Turn.Valid() {
		return nil, fmt.Errorf("invalid turn %d", snapshot.Turn)
	}
	b, err := board.FromRows(snapshot.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	s := &Session{
		board:       b,
		tracker:     connectivity.NewTracker(b),
		turn:        snapshot.Turn,
		moveNumbers: snapshot.MoveNumbers,
		movesPlayed: b.Size() - b.CountEmpty(),
	}
	s.tracker.Bootstrap()
	return s, nil
}

// Play places a stone for player at p and reports whether it won the game.
// On ResultContinue the turn passes to the opponent.
func (s *Session) Play(player board.PlayerID, p board.Position) (Result, error) {
	if s.winner != nil {
		return ResultContinue, ErrGameOver
	}
	if player != s.turn {
		return ResultContinue, fmt.Errorf("%w: %v to move", ErrNotYourTurn, s.turn)
	}
	if err := s.board.Place(p, player); err != nil {
		return ResultContinue, err
	}
	if _, err := s.tracker.ApplyMove(player, p); err != nil {
		return ResultContinue, fmt.Errorf("failed to update connectivity: %w", err)
	}
	s.movesPlayed++

	if s.tracker.CheckWin(player) {
		winner := player
		s.winner = &winner
		return ResultWin, nil
	}
	s.turn = player.Opponent()
	return ResultContinue, nil
}

// Snapshot returns the stored form of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Turn:        s.turn,
		MoveNumbers: s.moveNumbers,
		Rows:        s.board.Rows(),
	}
}

// Board returns the session's board. Callers must not place stones on it directly.
func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Tracker() *connectivity.Tracker {
	return s.tracker
}

// Turn returns the player to move, or the winner once the game is over.
func (s *Session) Turn() board.PlayerID {
	return s.turn
}

func (s *Session) Winner() (board.PlayerID, bool) {
	if s.winner == nil {
		return board.PlayerA, false
	}
	return *s.winner, true
}

// RestoreWinner records a win already present on a loaded board. It fails
// unless player has a chain joining its two edges.
func (s *Session) RestoreWinner(player board.PlayerID) error {
	if !player.Valid() {
		return fmt.Errorf("invalid player %d", player)
	}
	if !s.tracker.CheckWin(player) {
		return fmt.Errorf("player %v has no winning chain", player)
	}
	winner := player
	s.winner = &winner
	s.turn = player
	return nil
}

func (s *Session) Over() bool {
	return s.winner != nil
}

func (s *Session) MovesPlayed() int {
	return s.movesPlayed
}

// MoveNumber returns the automated move counter of player.
func (s *Session) MoveNumber(player board.PlayerID) int {
	return s.moveNumbers[player]
}

// SetMoveNumber stores the automated move counter of player.
func (s *Session) SetMoveNumber(player board.PlayerID, n int) {
	s.moveNumbers[player] = n
}
