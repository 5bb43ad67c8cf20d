package main

import (
	"bytes"
	"testing"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintUpdate(t *testing.T) {
	s, err := game.New(1, 2)
	require.NoError(t, err)
	buf := &bytes.Buffer{}

	require.NoError(t, printUpdate(buf, messages.NewGameStateUpdate(uuid.New(), s)))
	assert.Equal(t, "Player O to move\n. .\n", buf.String())

	buf.Reset()
	p := board.Position{Row: 0, Column: 0}
	result, err := s.Play(board.PlayerA, p)
	require.NoError(t, err)
	require.NoError(t, printUpdate(buf, messages.NewGameUpdate(uuid.New(), s, board.PlayerA, p, result)))
	assert.Equal(t, "Player O => 0 0\nO .\n", buf.String())

	buf.Reset()
	p = board.Position{Row: 0, Column: 1}
	result, err = s.Play(board.PlayerB, p)
	require.NoError(t, err)
	require.Equal(t, game.ResultWin, result)
	require.NoError(t, printUpdate(buf, messages.NewGameUpdate(uuid.New(), s, board.PlayerB, p, result)))
	assert.Equal(t, "Player X => 0 1\nO X\nPlayer X wins\n", buf.String())
}

func TestPrintUpdate_invalidBoard(t *testing.T) {
	err := printUpdate(&bytes.Buffer{}, &messages.GameUpdate{Height: 1, Width: 2, Cells: []byte("Z.")})
	assert.Error(t, err)
}
