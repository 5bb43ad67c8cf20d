package connectivity

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/hex/pkg/board"
)

// ErrInvariantViolation is returned when the tracker is asked to react to a
// placement that did not happen. It signals a caller bug, not bad user input.
var ErrInvariantViolation = errors.New("connectivity invariant violation")

// InvariantError describes a rejected ApplyMove call.
type InvariantError struct {
	Player   board.PlayerID
	Position board.Position
	Reason   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: player %v at %v: %s", ErrInvariantViolation, e.Player, e.Position, e.Reason)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}
