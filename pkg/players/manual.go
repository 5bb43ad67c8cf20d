package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/log"
)

// MaxInputLength is the longest accepted input line.
const MaxInputLength = 70

// SaveFunc writes the session to the named file.
type SaveFunc func(filename string, s *game.Session) error

// ManualMover reads moves typed by a person, one per line, in the form "row column".
// A line starting with 's' saves the game to the file named by the rest of the line.
type ManualMover struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	save   SaveFunc
	sawEOF bool
}

type NewManualMoverOptions struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
	Save   SaveFunc
}

func NewManualMover(opts NewManualMoverOptions) *ManualMover {
	return &ManualMover{
		in:     bufio.NewReader(opts.In),
		out:    opts.Out,
		errOut: opts.ErrOut,
		save:   opts.Save,
	}
}

// NextMove prompts until a valid move is entered. It returns ErrEOF once input
// is exhausted.
func (m *ManualMover) NextMove(s *game.Session, player board.PlayerID) (board.Position, error) {
	for {
		fmt.Fprintf(m.out, "Player %v] ", player)

		line, err := m.readLine()
		if err != nil {
			return board.Position{}, err
		}
		if len(line) > MaxInputLength {
			log.Debug("Rejected input of length %d", len(line))
			continue
		}
		if filename, ok := SaveCommand(line); ok {
			if err := m.save(filename, s); err != nil {
				log.Debug("Failed to save game to %q: %v", filename, err)
				fmt.Fprintln(m.errOut, "Unable to save game")
			}
			continue
		}
		p, err := ParseMove(line, s.Board())
		if err != nil {
			log.Debug("Rejected input %q: %v", line, err)
			continue
		}
		return p, nil
	}
}

// readLine returns the next line without its newline. A final line without a
// newline is returned once; the read after it fails with ErrEOF.
func (m *ManualMover) readLine() (string, error) {
	if m.sawEOF {
		return "", ErrEOF
	}
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrEOF
		}
		m.sawEOF = true
		return line, nil
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// SaveCommand reports whether line asks to save the game and returns the file name.
func SaveCommand(line string) (string, bool) {
	if !strings.HasPrefix(line, "s") {
		return "", false
	}
	return line[1:], true
}

// ParseMove parses "row column": two integers separated by exactly one space,
// naming an empty cell on b.
func ParseMove(line string, b *board.Board) (board.Position, error) {
	if strings.Count(line, " ") != 1 {
		return board.Position{}, fmt.Errorf("%w: want two values separated by one space", ErrInvalidMove)
	}
	fields := strings.Split(line, " ")
	if fields[0] == "" || fields[1] == "" {
		return board.Position{}, fmt.Errorf("%w: want two values separated by one space", ErrInvalidMove)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Position{}, fmt.Errorf("%w: row %q is not an integer", ErrInvalidMove, fields[0])
	}
	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Position{}, fmt.Errorf("%w: column %q is not an integer", ErrInvalidMove, fields[1])
	}
	p := board.Position{Row: row, Column: column}
	if !b.InBounds(p) {
		return board.Position{}, fmt.Errorf("%w: %v is off the board", ErrInvalidMove, p)
	}
	if b.At(p) != board.Empty {
		return board.Position{}, fmt.Errorf("%w: %v is taken", ErrInvalidMove, p)
	}
	return p, nil
}
