package board

// MaxNeighbors is the number of directions a cell can connect in.
const MaxNeighbors = 6

// directions are the rhombic adjacency offsets, in the order neighbors are reported.
var directions = [MaxNeighbors]Position{
	{Row: -1, Column: 0},
	{Row: 0, Column: 1},
	{Row: 1, Column: 1},
	{Row: 1, Column: 0},
	{Row: 0, Column: -1},
	{Row: -1, Column: -1},
}

// Neighbors is a fixed-capacity set of adjacent positions.
type Neighbors struct {
	positions [MaxNeighbors]Position
	count     int
}

func (n *Neighbors) Len() int {
	return n.count
}

func (n *Neighbors) At(i int) Position {
	return n.positions[i]
}

// All returns the valid neighbors as a slice backed by n.
func (n *Neighbors) All() []Position {
	return n.positions[:n.count]
}

// NeighborsOf returns the in-bounds neighbors of p on a height x width board.
// Out-of-bounds candidates are dropped. The order always follows directions.
func NeighborsOf(p Position, height, width int) Neighbors {
	var n Neighbors
	for _, d := range directions {
		candidate := Position{Row: p.Row + d.Row, Column: p.Column + d.Column}
		if candidate.Row < 0 || candidate.Row >= height || candidate.Column < 0 || candidate.Column >= width {
			continue
		}
		n.positions[n.count] = candidate
		n.count++
	}
	return n
}

// Neighbors returns the in-bounds neighbors of p on b.
func (b *Board) Neighbors(p Position) Neighbors {
	return NeighborsOf(p, b.height, b.width)
}
