package connectivity

import (
	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/queue"
)

// maxInitialWorklist bounds the worklist preallocation on large boards.
const maxInitialWorklist = 256

// Tracker records, per player, which stones are connected through same-owner
// stones to that player's starting edge. Marks are only ever added.
//
// A Tracker belongs to a single game session and is not safe for concurrent use.
type Tracker struct {
	board     *board.Board
	connected [2][]bool
	worklist  queue.Queue[board.Position]
}

// NewTracker creates a tracker with no connected cells for b.
// Call Bootstrap when b already holds stones.
func NewTracker(b *board.Board) *Tracker {
	worklistCap := b.Size()
	if worklistCap > maxInitialWorklist {
		worklistCap = maxInitialWorklist
	}
	return &Tracker{
		board: b,
		connected: [2][]bool{
			make([]bool, b.Size()),
			make([]bool, b.Size()),
		},
		worklist: queue.NewRingQueue[board.Position](worklistCap),
	}
}

// ApplyMove updates the tracker after a stone of player was placed at p.
// The stone is a seed when it lies on the player's starting edge or touches an
// already connected stone of the same player; a seed is marked and every stone
// reachable from it through unmarked same-owner stones is marked too.
// A stone that is not a seed is left unmarked until a later seed reaches it.
//
// ApplyMove reports whether p was seeded. It never places stones itself and
// rejects a call where the board does not hold player's stone at p.
func (t *Tracker) ApplyMove(player board.PlayerID, p board.Position) (bool, error) {
	if err := t.checkPlacement(player, p); err != nil {
		return false, err
	}
	if t.Connected(player, p) {
		return false, nil
	}
	if !OnStartEdge(player, p) && !t.touchesConnected(player, p) {
		return false, nil
	}
	t.propagate(player, p)
	return true, nil
}

// Connected reports whether the stone at p is connected to player's starting edge.
// Off-board positions are never connected.
func (t *Tracker) Connected(player board.PlayerID, p board.Position) bool {
	if !player.Valid() || !t.board.InBounds(p) {
		return false
	}
	return t.connected[player][t.index(p)]
}

// ConnectedCount returns the number of cells marked for player.
func (t *Tracker) ConnectedCount(player board.PlayerID) int {
	count := 0
	for _, marked := range t.connected[player] {
		if marked {
			count++
		}
	}
	return count
}

// Grid returns a row-major copy of player's connection marks.
func (t *Tracker) Grid(player board.PlayerID) []bool {
	grid := make([]bool, len(t.connected[player]))
	copy(grid, t.connected[player])
	return grid
}

func (t *Tracker) checkPlacement(player board.PlayerID, p board.Position) error {
	if !player.Valid() {
		return &InvariantError{Player: player, Position: p, Reason: "unknown player"}
	}
	if !t.board.InBounds(p) {
		return &InvariantError{Player: player, Position: p, Reason: "position is off the board"}
	}
	if state := t.board.At(p); state != board.OwnedBy(player) {
		return &InvariantError{Player: player, Position: p, Reason: "cell holds " + state.String()}
	}
	return nil
}

func (t *Tracker) touchesConnected(player board.PlayerID, p board.Position) bool {
	n := t.board.Neighbors(p)
	for _, q := range n.All() {
		if t.connected[player][t.index(q)] {
			return true
		}
	}
	return false
}

// propagate marks seed and runs a breadth-first fill over player's stones.
// A cell is enqueued only when it is first marked, so each cell is expanded at most once.
func (t *Tracker) propagate(player board.PlayerID, seed board.Position) {
	owned := board.OwnedBy(player)
	marks := t.connected[player]

	t.worklist.Clear()
	marks[t.index(seed)] = true
	t.worklist.Enqueue(seed)

	for {
		p, ok := t.worklist.Dequeue()
		if !ok {
			return
		}
		n := t.board.Neighbors(p)
		for _, q := range n.All() {
			i := t.index(q)
			if marks[i] || t.board.At(q) != owned {
				continue
			}
			marks[i] = true
			t.worklist.Enqueue(q)
		}
	}
}

func (t *Tracker) index(p board.Position) int {
	return p.Row*t.board.Width() + p.Column
}
