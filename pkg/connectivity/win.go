package connectivity

import "github.com/cbodonnell/hex/pkg/board"

// CheckWin reports whether any cell on player's target edge is connected.
// It only reads tracker state.
func (t *Tracker) CheckWin(player board.PlayerID) bool {
	if !player.Valid() {
		return false
	}
	height, width := t.board.Height(), t.board.Width()
	marks := t.connected[player]
	if player == board.PlayerA {
		for r := 0; r < height; r++ {
			if marks[r*width+width-1] {
				return true
			}
		}
		return false
	}
	last := (height - 1) * width
	for c := 0; c < width; c++ {
		if marks[last+c] {
			return true
		}
	}
	return false
}

// Winner returns the first player, in turn order, whose target edge is reached.
func (t *Tracker) Winner() (board.PlayerID, bool) {
	for _, player := range board.Players {
		if t.CheckWin(player) {
			return player, true
		}
	}
	return board.PlayerA, false
}
