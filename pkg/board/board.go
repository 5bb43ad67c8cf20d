package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinDimension is the smallest allowed board height or width.
	MinDimension = 1
	// MaxDimension is the largest allowed board height or width.
	MaxDimension = 1000
)

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrOccupied          = errors.New("position already occupied")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidSymbol     = errors.New("invalid cell symbol")
)

// PlayerID identifies one of the two players. Each player is bound to one
// pair of board edges for the whole game.
type PlayerID int

const (
	// PlayerA plays O and connects the left edge (column 0) to the right edge.
	PlayerA PlayerID = iota
	// PlayerB plays X and connects the top edge (row 0) to the bottom edge.
	PlayerB
)

// Players lists both players in turn order.
var Players = [2]PlayerID{PlayerA, PlayerB}

func (p PlayerID) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p PlayerID) Opponent() PlayerID {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Symbol returns the character used for the player's stones.
func (p PlayerID) Symbol() byte {
	switch p {
	case PlayerA:
		return 'O'
	case PlayerB:
		return 'X'
	default:
		return '?'
	}
}

func (p PlayerID) String() string {
	return string(p.Symbol())
}

// CellState is the content of a single board cell.
type CellState uint8

const (
	Empty CellState = iota
	OwnedByA
	OwnedByB
)

// OwnedBy returns the cell state holding a stone of player p.
func OwnedBy(p PlayerID) CellState {
	if p == PlayerB {
		return OwnedByB
	}
	return OwnedByA
}

// Owner returns the player owning the cell, or false for an empty cell.
func (c CellState) Owner() (PlayerID, bool) {
	switch c {
	case OwnedByA:
		return PlayerA, true
	case OwnedByB:
		return PlayerB, true
	default:
		return PlayerA, false
	}
}

func (c CellState) Symbol() byte {
	switch c {
	case OwnedByA:
		return PlayerA.Symbol()
	case OwnedByB:
		return PlayerB.Symbol()
	default:
		return '.'
	}
}

func (c CellState) String() string {
	return string(c.Symbol())
}

// CellFromSymbol parses 'O', 'X' or '.' into a CellState.
func CellFromSymbol(symbol byte) (CellState, error) {
	switch symbol {
	case '.':
		return Empty, nil
	case 'O':
		return OwnedByA, nil
	case 'X':
		return OwnedByB, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
}

// Position is a (row, column) grid coordinate.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d %d", p.Row, p.Column)
}

// Board is a height x width grid of cells stored as a flat slice.
// Stones are only ever added: a cell changes at most once, from Empty to a player.
type Board struct {
	height int
	width  int
	cells  []CellState
}

// NewBoard creates an empty board.
func NewBoard(height, width int) (*Board, error) {
	if !ValidDimensions(height, width) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	return &Board{
		height: height,
		width:  width,
		cells:  make([]CellState, height*width),
	}, nil
}

// FromRows builds a board from rows of 'O', 'X' and '.' characters.
// Every row must have the same length.
func FromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidDimensions, r, len(row), b.width)
		}
		for c := 0; c < len(row); c++ {
			state, err := CellFromSymbol(row[c])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", r, c, err)
			}
			b.cells[b.index(Position{Row: r, Column: c})] = state
		}
	}
	return b, nil
}

// ValidDimensions reports whether height and width are within the allowed range.
func ValidDimensions(height, width int) bool {
	return height >= MinDimension && height <= MaxDimension &&
		width >= MinDimension && width <= MaxDimension
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Size() int {
	return len(b.cells)
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Column >= 0 && p.Column < b.width
}

// At returns the state of the cell at p. The caller must pass an in-bounds position.
func (b *Board) At(p Position) CellState {
	return b.cells[b.index(p)]
}

// IsEmpty reports whether p is on the board and holds no stone.
func (b *Board) IsEmpty(p Position) bool {
	return b.InBounds(p) && b.At(p) == Empty
}

// Place puts a stone of player at p.
func (b *Board) Place(p Position, player PlayerID) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.height, b.width)
	}
	i := b.index(p)
	if b.cells[i] != Empty {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	b.cells[i] = OwnedBy(player)
	return nil
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

func (b *Board) Full() bool {
	return b.CountEmpty() == 0
}

// Rows returns the board as rows of 'O', 'X' and '.' characters.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		sb.Reset()
		for c := 0; c < b.width; c++ {
			sb.WriteByte(b.cells[b.index(Position{Row: r, Column: c})].Symbol())
		}
		rows[r] = sb.String()
	}
	return rows
}

// Cells returns a copy of the cells in row-major order.
func (b *Board) Cells() []CellState {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) Clone() *Board {
	clone := &Board{height: b.height, width: b.width}
	clone.cells = make([]CellState, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) index(p Position) int {
	return p.Row*b.width + p.Column
}
