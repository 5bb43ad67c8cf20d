package savefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks save files stored zstd-compressed.
const CompressedSuffix = ".zst"

// headerFields is the number of comma separated values on the first line:
// turn, height, width, and the move numbers of both players.
const headerFields = 5

var (
	ErrOpen              = errors.New("could not open save file")
	ErrIncorrectContents = errors.New("incorrect file contents")
)

// Encode writes a snapshot in the save file format.
func Encode(w io.Writer, snapshot game.Snapshot) error {
	height := len(snapshot.Rows)
	width := 0
	if height > 0 {
		width = len(snapshot.Rows[0])
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d,%d,%d,%d,%d\n",
		int(snapshot.Turn), height, width,
		snapshot.MoveNumbers[board.PlayerA], snapshot.MoveNumbers[board.PlayerB])
	for _, row := range snapshot.Rows {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// Decode parses a save file. Every line must end with a newline and the grid
// must match the header dimensions exactly.
func Decode(r io.Reader) (game.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrIncorrectContents, err)
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		return game.Snapshot{}, fmt.Errorf("%w: missing final newline", ErrIncorrectContents)
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	header, err := parseHeader(lines[0])
	if err != nil {
		return game.Snapshot{}, err
	}
	if len(lines)-1 != header.height {
		return game.Snapshot{}, fmt.Errorf("%w: found %d grid lines, want %d", ErrIncorrectContents, len(lines)-1, header.height)
	}

	rows := lines[1:]
	for i, row := range rows {
		if len(row) != header.width {
			return game.Snapshot{}, fmt.Errorf("%w: grid line %d has length %d, want %d", ErrIncorrectContents, i, len(row), header.width)
		}
		for j := 0; j < len(row); j++ {
			if _, err := board.CellFromSymbol(row[j]); err != nil {
				return game.Snapshot{}, fmt.Errorf("%w: grid line %d: %v", ErrIncorrectContents, i, err)
			}
		}
	}

	return game.Snapshot{
		Turn:        header.turn,
		MoveNumbers: header.moveNumbers,
		Rows:        rows,
	}, nil
}

type header struct {
	turn        board.PlayerID
	height      int
	width       int
	moveNumbers [2]int
}

func parseHeader(line string) (header, error) {
	fields := strings.Split(line, ",")
	if len(fields) != headerFields {
		return header{}, fmt.Errorf("%w: header has %d fields, want %d", ErrIncorrectContents, len(fields), headerFields)
	}
	values := make([]int, headerFields)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return header{}, fmt.Errorf("%w: header field %d %q is not an integer", ErrIncorrectContents, i, field)
		}
		values[i] = v
	}

	h := header{
		height:      values[1],
		width:       values[2],
		moveNumbers: [2]int{values[3], values[4]},
	}
	switch values[0] {
	case 0:
		h.turn = board.PlayerA
	case 1:
		h.turn = board.PlayerB
	default:
		return header{}, fmt.Errorf("%w: turn must be 0 or 1, got %d", ErrIncorrectContents, values[0])
	}
	if !board.ValidDimensions(h.height, h.width) {
		return header{}, fmt.Errorf("%w: dimensions %dx%d", ErrIncorrectContents, h.height, h.width)
	}
	if h.moveNumbers[0] < 0 || h.moveNumbers[1] < 0 {
		return header{}, fmt.Errorf("%w: negative move number", ErrIncorrectContents)
	}
	return h, nil
}

// Save writes the session to filename, compressing it when the name ends in CompressedSuffix.
func Save(filename string, s *game.Session) error {
	buf := &bytes.Buffer{}
	if err := Encode(buf, s.Snapshot()); err != nil {
		return err
	}

	data := buf.Bytes()
	if strings.HasSuffix(filename, CompressedSuffix) {
		compressed, err := compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// Load reads a save file and rebuilds the session from it. It returns an error
// wrapping ErrOpen when the file cannot be opened and ErrIncorrectContents when
// it cannot be parsed.
func Load(filename string) (*game.Session, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, CompressedSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create zstd reader: %v", ErrIncorrectContents, err)
		}
		defer dec.Close()
		r = dec
	}

	snapshot, err := Decode(r)
	if err != nil {
		return nil, err
	}
	s, err := game.Load(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncorrectContents, err)
	}
	return s, nil
}

func compress(data []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress save file: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}
