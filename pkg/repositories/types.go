package repositories

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/savefile"
)

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// encodeSnapshot stores a board in the same text format as save files.
func encodeSnapshot(snapshot game.Snapshot) (string, error) {
	buf := &bytes.Buffer{}
	if err := savefile.Encode(buf, snapshot); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func decodeSnapshot(contents string) (game.Snapshot, error) {
	snapshot, err := savefile.Decode(strings.NewReader(contents))
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("failed to decode stored board: %v", err)
	}
	return snapshot, nil
}

func winnerValue(winner *board.PlayerID) *int16 {
	if winner == nil {
		return nil
	}
	v := int16(*winner)
	return &v
}

func winnerFromValue(v *int16) (*board.PlayerID, error) {
	if v == nil {
		return nil, nil
	}
	winner := board.PlayerID(*v)
	if !winner.Valid() {
		return nil, fmt.Errorf("invalid stored winner %d", *v)
	}
	return &winner, nil
}

func dimensions(snapshot game.Snapshot) (int, int) {
	if len(snapshot.Rows) == 0 {
		return 0, 0
	}
	return len(snapshot.Rows), len(snapshot.Rows[0])
}
