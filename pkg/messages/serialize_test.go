package messages

import (
	"testing"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeGameUpdate(t *testing.T) {
	winner := board.PlayerB
	tests := []struct {
		name   string
		update *GameUpdate
	}{
		{
			name: "move by player A",
			update: &GameUpdate{
				GameID:    uuid.New(),
				Timestamp: 1718000000000,
				Player:    board.PlayerA,
				Move:      &board.Position{Row: 0, Column: 0},
				Result:    game.ResultContinue,
				Height:    2,
				Width:     3,
				Cells:     []byte("O....."),
			},
		},
		{
			name: "winning move",
			update: &GameUpdate{
				GameID:    uuid.New(),
				Timestamp: 42,
				Player:    board.PlayerB,
				Move:      &board.Position{Row: 1, Column: 2},
				Result:    game.ResultWin,
				Winner:    &winner,
				Height:    2,
				Width:     3,
				Cells:     []byte("O.XOXX"),
			},
		},
		{
			name: "state without a move",
			update: &GameUpdate{
				GameID: uuid.New(),
				Player: board.PlayerB,
				Result: game.ResultContinue,
				Height: 1,
				Width:  1,
				Cells:  []byte("."),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeGameUpdate(tt.update)
			require.NoError(t, err)

			got, err := DeserializeGameUpdate(b)
			require.NoError(t, err)
			assert.Equal(t, tt.update, got)
		})
	}
}

func TestSerializeGameUpdate_cellsMismatch(t *testing.T) {
	_, err := SerializeGameUpdate(&GameUpdate{
		GameID: uuid.New(),
		Height: 2,
		Width:  2,
		Cells:  []byte("..."),
	})
	assert.Error(t, err)
}

func TestDeserializeGameUpdate_invalid(t *testing.T) {
	_, err := DeserializeGameUpdate([]byte("not compressed"))
	assert.Error(t, err)
}

func TestNewGameUpdate(t *testing.T) {
	s, err := game.New(1, 2)
	require.NoError(t, err)
	id := uuid.New()

	initial := NewGameStateUpdate(id, s)
	assert.Nil(t, initial.Move)
	assert.Nil(t, initial.Winner)
	assert.Equal(t, board.PlayerA, initial.Player)
	assert.Equal(t, []string{".."}, initial.Rows())

	_, err = s.Play(board.PlayerA, board.Position{Row: 0, Column: 0})
	require.NoError(t, err)
	p := board.Position{Row: 0, Column: 1}
	result, err := s.Play(board.PlayerB, p)
	require.NoError(t, err)

	update := NewGameUpdate(id, s, board.PlayerB, p, result)
	assert.Equal(t, id, update.GameID)
	assert.Equal(t, &p, update.Move)
	assert.Equal(t, game.ResultWin, update.Result)
	require.NotNil(t, update.Winner)
	assert.Equal(t, board.PlayerB, *update.Winner)
	assert.Equal(t, []string{"OX"}, update.Rows())
}
