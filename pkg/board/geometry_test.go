package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborsOf(t *testing.T) {
	tests := []struct {
		name   string
		p      Position
		height int
		width  int
		want   []Position
	}{
		{
			name:   "interior cell has six neighbors in direction order",
			p:      Position{Row: 1, Column: 1},
			height: 3,
			width:  3,
			want: []Position{
				{Row: 0, Column: 1},
				{Row: 1, Column: 2},
				{Row: 2, Column: 2},
				{Row: 2, Column: 1},
				{Row: 1, Column: 0},
				{Row: 0, Column: 0},
			},
		},
		{
			name:   "top left corner",
			p:      Position{Row: 0, Column: 0},
			height: 3,
			width:  3,
			want: []Position{
				{Row: 0, Column: 1},
				{Row: 1, Column: 1},
				{Row: 1, Column: 0},
			},
		},
		{
			name:   "top right corner",
			p:      Position{Row: 0, Column: 2},
			height: 3,
			width:  3,
			want: []Position{
				{Row: 1, Column: 2},
				{Row: 0, Column: 1},
			},
		},
		{
			name:   "bottom left corner",
			p:      Position{Row: 2, Column: 0},
			height: 3,
			width:  3,
			want: []Position{
				{Row: 1, Column: 0},
				{Row: 2, Column: 1},
			},
		},
		{
			name:   "bottom right corner",
			p:      Position{Row: 2, Column: 2},
			height: 3,
			width:  3,
			want: []Position{
				{Row: 1, Column: 2},
				{Row: 2, Column: 1},
				{Row: 1, Column: 1},
			},
		},
		{
			name:   "single cell board",
			p:      Position{Row: 0, Column: 0},
			height: 1,
			width:  1,
			want:   []Position{},
		},
		{
			name:   "single row board",
			p:      Position{Row: 0, Column: 2},
			height: 1,
			width:  4,
			want: []Position{
				{Row: 0, Column: 3},
				{Row: 0, Column: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NeighborsOf(tt.p, tt.height, tt.width)
			assert.Equal(t, len(tt.want), n.Len())
			assert.Equal(t, tt.want, append([]Position{}, n.All()...))
		})
	}
}

func TestNeighborsOf_symmetric(t *testing.T) {
	const height, width = 5, 7
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := Position{Row: r, Column: c}
			n := NeighborsOf(p, height, width)
			for _, q := range n.All() {
				back := NeighborsOf(q, height, width)
				assert.Contains(t, back.All(), p, "%v is a neighbor of %v but not the reverse", q, p)
			}
		}
	}
}

func TestBoard_Neighbors(t *testing.T) {
	b, err := NewBoard(2, 2)
	assert.NoError(t, err)
	n := b.Neighbors(Position{Row: 1, Column: 1})
	assert.Equal(t, []Position{
		{Row: 0, Column: 1},
		{Row: 1, Column: 0},
		{Row: 0, Column: 0},
	}, append([]Position{}, n.All()...))
}
