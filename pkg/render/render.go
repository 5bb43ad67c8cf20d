package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/hex/pkg/board"
)

// Render writes the board as a rhombus: row i is shifted right by
// height-1-i spaces and cells are separated by a single space.
func Render(w io.Writer, b *board.Board) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(b) {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

// Lines returns the rendered rows of the board without line terminators.
func Lines(b *board.Board) []string {
	height, width := b.Height(), b.Width()
	lines := make([]string, height)
	var sb strings.Builder
	for r := 0; r < height; r++ {
		sb.Reset()
		sb.Grow(height + 2*width)
		sb.WriteString(strings.Repeat(" ", height-1-r))
		for c := 0; c < width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.At(board.Position{Row: r, Column: c}).Symbol())
		}
		lines[r] = sb.String()
	}
	return lines
}
