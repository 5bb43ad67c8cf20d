package savefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    game.Snapshot
		wantErr bool
	}{
		{
			name:  "valid",
			input: "1,2,3,4,5\nO.X\n..O\n",
			want: game.Snapshot{
				Turn:        board.PlayerB,
				MoveNumbers: [2]int{4, 5},
				Rows:        []string{"O.X", "..O"},
			},
		},
		{
			name:  "single cell",
			input: "0,1,1,0,0\n.\n",
			want: game.Snapshot{
				Turn: board.PlayerA,
				Rows: []string{"."},
			},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "missing final newline", input: "0,1,1,0,0\n.", wantErr: true},
		{name: "too few header fields", input: "0,1,1,0\n.\n", wantErr: true},
		{name: "too many header fields", input: "0,1,1,0,0,0\n.\n", wantErr: true},
		{name: "non integer field", input: "0,1,a,0,0\n.\n", wantErr: true},
		{name: "empty field", input: "0,1,,0,0\n.\n", wantErr: true},
		{name: "bad turn", input: "2,1,1,0,0\n.\n", wantErr: true},
		{name: "zero height", input: "0,0,1,0,0\n", wantErr: true},
		{name: "too wide", input: "0,1,1001,0,0\n" + strings.Repeat(".", 1001) + "\n", wantErr: true},
		{name: "negative move number", input: "0,1,1,-1,0\n.\n", wantErr: true},
		{name: "too few grid lines", input: "0,2,1,0,0\n.\n", wantErr: true},
		{name: "too many grid lines", input: "0,1,1,0,0\n.\n.\n", wantErr: true},
		{name: "short grid line", input: "0,2,2,0,0\n..\n.\n", wantErr: true},
		{name: "long grid line", input: "0,1,2,0,0\n...\n", wantErr: true},
		{name: "bad character", input: "0,1,2,0,0\n.o\n", wantErr: true},
		{name: "carriage return", input: "0,1,1,0,0\r\n.\r\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIncorrectContents)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(buf, game.Snapshot{
		Turn:        board.PlayerA,
		MoveNumbers: [2]int{12, 3},
		Rows:        []string{"OX", ".."},
	})
	require.NoError(t, err)
	assert.Equal(t, "0,2,2,12,3\nOX\n..\n", buf.String())
}

func playedSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.New(3, 4)
	require.NoError(t, err)
	moves := []struct {
		player board.PlayerID
		p      board.Position
	}{
		{board.PlayerA, board.Position{Row: 1, Column: 0}},
		{board.PlayerB, board.Position{Row: 0, Column: 2}},
		{board.PlayerA, board.Position{Row: 1, Column: 1}},
	}
	for _, m := range moves {
		_, err := s.Play(m.player, m.p)
		require.NoError(t, err)
	}
	s.SetMoveNumber(board.PlayerA, 7)
	return s
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"game.sav", "game.sav" + CompressedSuffix} {
		t.Run(name, func(t *testing.T) {
			s := playedSession(t)
			filename := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(filename, s))

			loaded, err := Load(filename)
			require.NoError(t, err)
			assert.Equal(t, s.Snapshot(), loaded.Snapshot())
			assert.Equal(t, board.PlayerB, loaded.Turn())
			assert.Equal(t, 7, loaded.MoveNumber(board.PlayerA))
			for _, player := range board.Players {
				assert.Equal(t, s.Tracker().Grid(player), loaded.Tracker().Grid(player))
			}
		})
	}
}

func TestSave_compressedIsNotPlainText(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "game"+CompressedSuffix)
	require.NoError(t, Save(filename, playedSession(t)))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(data, []byte("1,3,4")))
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.sav"))
	assert.ErrorIs(t, err, ErrOpen)

	bad := filepath.Join(dir, "bad.sav")
	require.NoError(t, os.WriteFile(bad, []byte("0,1,1,0,0\nZ\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrIncorrectContents)

	notCompressed := filepath.Join(dir, "plain"+CompressedSuffix)
	require.NoError(t, os.WriteFile(notCompressed, []byte("0,1,1,0,0\n.\n"), 0o644))
	_, err = Load(notCompressed)
	assert.ErrorIs(t, err, ErrIncorrectContents)
}
