package connectivity

import "github.com/cbodonnell/hex/pkg/board"

// OnStartEdge reports whether p lies on player's starting edge:
// column 0 for PlayerA, row 0 for PlayerB.
func OnStartEdge(player board.PlayerID, p board.Position) bool {
	if player == board.PlayerA {
		return p.Column == 0
	}
	return p.Row == 0
}
