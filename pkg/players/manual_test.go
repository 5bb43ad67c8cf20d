package players

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	b, err := board.FromRows([]string{
		"O..",
		"...",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		line    string
		want    board.Position
		wantErr bool
	}{
		{name: "valid", line: "1 2", want: board.Position{Row: 1, Column: 2}},
		{name: "explicit sign", line: "+1 0", want: board.Position{Row: 1, Column: 0}},
		{name: "occupied", line: "0 0", wantErr: true},
		{name: "row off the board", line: "2 0", wantErr: true},
		{name: "column off the board", line: "0 3", wantErr: true},
		{name: "negative", line: "-1 0", wantErr: true},
		{name: "one value", line: "1", wantErr: true},
		{name: "three values", line: "1 1 1", wantErr: true},
		{name: "two spaces", line: "1  1", wantErr: true},
		{name: "leading space", line: " 1 1", wantErr: true},
		{name: "trailing space", line: "1 ", wantErr: true},
		{name: "not a number", line: "a 1", wantErr: true},
		{name: "tab separated", line: "1\t1", wantErr: true},
		{name: "empty", line: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.line, b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMove)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveCommand(t *testing.T) {
	name, ok := SaveCommand("sgame.sav")
	assert.True(t, ok)
	assert.Equal(t, "game.sav", name)

	_, ok = SaveCommand("1 1")
	assert.False(t, ok)
}

func newTestMover(input string, save SaveFunc) (*ManualMover, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	if save == nil {
		save = func(string, *game.Session) error { return nil }
	}
	mover := NewManualMover(NewManualMoverOptions{
		In:     strings.NewReader(input),
		Out:    out,
		ErrOut: errOut,
		Save:   save,
	})
	return mover, out, errOut
}

func TestManualMover_repromptsUntilValid(t *testing.T) {
	s, err := game.New(2, 2)
	require.NoError(t, err)
	_, err = s.Play(board.PlayerA, board.Position{Row: 0, Column: 0})
	require.NoError(t, err)

	long := strings.Repeat("1", MaxInputLength+1)
	mover, out, _ := newTestMover("\nabc\n"+long+"\n0 0\n9 9\n1 1\n", nil)

	p, err := mover.NextMove(s, board.PlayerB)
	require.NoError(t, err)
	assert.Equal(t, board.Position{Row: 1, Column: 1}, p)
	assert.Equal(t, strings.Repeat("Player X] ", 6), out.String())
}

func TestManualMover_save(t *testing.T) {
	s, err := game.New(2, 2)
	require.NoError(t, err)

	var saved []string
	save := func(filename string, session *game.Session) error {
		saved = append(saved, filename)
		if filename == "bad" {
			return errors.New("permission denied")
		}
		return nil
	}
	mover, out, errOut := newTestMover("sgood.sav\nsbad\n0 1\n", save)

	p, err := mover.NextMove(s, board.PlayerA)
	require.NoError(t, err)
	assert.Equal(t, board.Position{Row: 0, Column: 1}, p)
	assert.Equal(t, []string{"good.sav", "bad"}, saved)
	assert.Equal(t, "Unable to save game\n", errOut.String())
	assert.Equal(t, strings.Repeat("Player O] ", 3), out.String())
}

func TestManualMover_EOF(t *testing.T) {
	s, err := game.New(2, 2)
	require.NoError(t, err)

	mover, _, _ := newTestMover("", nil)
	_, err = mover.NextMove(s, board.PlayerA)
	assert.ErrorIs(t, err, ErrEOF)

	// a final line without a newline is still played
	mover, _, _ = newTestMover("1 0", nil)
	p, err := mover.NextMove(s, board.PlayerA)
	require.NoError(t, err)
	assert.Equal(t, board.Position{Row: 1, Column: 0}, p)
	_, err = mover.NextMove(s, board.PlayerB)
	assert.ErrorIs(t, err, ErrEOF)

	// an invalid final line leads to EOF on the reprompt
	mover, _, _ = newTestMover("nope", nil)
	_, err = mover.NextMove(s, board.PlayerA)
	assert.ErrorIs(t, err, ErrEOF)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("a")
	require.NoError(t, err)
	assert.Equal(t, KindAuto, kind)

	kind, err = ParseKind("m")
	require.NoError(t, err)
	assert.Equal(t, KindManual, kind)

	_, err = ParseKind("am")
	assert.ErrorIs(t, err, ErrInvalidType)
}
