package connectivity

import "github.com/cbodonnell/hex/pkg/board"

// Bootstrap derives connection marks for a board that was filled without
// going through ApplyMove, such as a board loaded from a save file.
// Every unmarked stone on a player's starting edge seeds a propagation, so
// disjoint chains touching the edge are all found. Bootstrap does not decide
// the game; call CheckWin afterwards if a win at load time matters.
//
// It returns the number of seeds that started a propagation.
func (t *Tracker) Bootstrap() int {
	seeds := 0
	height, width := t.board.Height(), t.board.Width()

	for r := 0; r < height; r++ {
		p := board.Position{Row: r, Column: 0}
		if t.board.At(p) == board.OwnedByA && !t.connected[board.PlayerA][t.index(p)] {
			t.propagate(board.PlayerA, p)
			seeds++
		}
	}
	for c := 0; c < width; c++ {
		p := board.Position{Row: 0, Column: c}
		if t.board.At(p) == board.OwnedByB && !t.connected[board.PlayerB][t.index(p)] {
			t.propagate(board.PlayerB, p)
			seeds++
		}
	}
	return seeds
}
