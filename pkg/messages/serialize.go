package messages

import (
	"bytes"
	"fmt"
	"io"

	gameupdatefb "github.com/cbodonnell/hex/flatbuffers/gameupdate"
	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// noWinner is the encoded winner of a game still in progress. A winner is
// stored as its player id plus one.
const noWinner = 0

// SerializeGameUpdate encodes the update as a flatbuffer and compresses it.
func SerializeGameUpdate(u *GameUpdate) ([]byte, error) {
	b, err := SerializeGameUpdateFlatbuffer(u)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game update: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress game update: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeGameUpdate(data []byte) (*GameUpdate, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed game update: %v", err)
	}

	update, err := DeserializeGameUpdateFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game update: %v", err)
	}

	return update, nil
}

func SerializeGameUpdateFlatbuffer(u *GameUpdate) ([]byte, error) {
	if len(u.Cells) != u.Height*u.Width {
		return nil, fmt.Errorf("cells length %d does not match %dx%d board", len(u.Cells), u.Height, u.Width)
	}

	builder := flatbuffers.NewBuilder(64 + len(u.Cells))

	gameID := builder.CreateString(u.GameID.String())
	cells := builder.CreateByteVector(u.Cells)

	row, column := int32(-1), int32(-1)
	if u.Move != nil {
		row, column = int32(u.Move.Row), int32(u.Move.Column)
	}
	winner := byte(noWinner)
	if u.Winner != nil {
		winner = byte(*u.Winner) + 1
	}

	gameupdatefb.GameUpdateStart(builder)
	gameupdatefb.GameUpdateAddGameId(builder, gameID)
	gameupdatefb.GameUpdateAddTimestamp(builder, u.Timestamp)
	gameupdatefb.GameUpdateAddPlayer(builder, byte(u.Player))
	gameupdatefb.GameUpdateAddRow(builder, row)
	gameupdatefb.GameUpdateAddColumn(builder, column)
	gameupdatefb.GameUpdateAddResult(builder, byte(u.Result))
	gameupdatefb.GameUpdateAddWinner(builder, winner)
	gameupdatefb.GameUpdateAddHeight(builder, int32(u.Height))
	gameupdatefb.GameUpdateAddWidth(builder, int32(u.Width))
	gameupdatefb.GameUpdateAddCells(builder, cells)
	updateOffset := gameupdatefb.GameUpdateEnd(builder)
	gameupdatefb.FinishGameUpdateBuffer(builder, updateOffset)

	return builder.FinishedBytes(), nil
}

func DeserializeGameUpdateFlatbuffer(b []byte) (*GameUpdate, error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("buffer too short: %d bytes", len(b))
	}
	updateFlatbuffer := gameupdatefb.GetRootAsGameUpdate(b, 0)

	gameID, err := uuid.ParseBytes(updateFlatbuffer.GameId())
	if err != nil {
		return nil, fmt.Errorf("failed to parse game id: %v", err)
	}

	update := &GameUpdate{
		GameID:    gameID,
		Timestamp: updateFlatbuffer.Timestamp(),
		Player:    board.PlayerID(updateFlatbuffer.Player()),
		Result:    game.Result(updateFlatbuffer.Result()),
		Height:    int(updateFlatbuffer.Height()),
		Width:     int(updateFlatbuffer.Width()),
	}
	if !update.Player.Valid() {
		return nil, fmt.Errorf("invalid player %d", update.Player)
	}
	if row, column := updateFlatbuffer.Row(), updateFlatbuffer.Column(); row >= 0 && column >= 0 {
		update.Move = &board.Position{Row: int(row), Column: int(column)}
	}
	if w := updateFlatbuffer.Winner(); w != noWinner {
		winner := board.PlayerID(w - 1)
		if !winner.Valid() {
			return nil, fmt.Errorf("invalid winner %d", w)
		}
		update.Winner = &winner
	}

	cells := updateFlatbuffer.CellsBytes()
	if len(cells) != update.Height*update.Width {
		return nil, fmt.Errorf("cells length %d does not match %dx%d board", len(cells), update.Height, update.Width)
	}
	update.Cells = make([]byte, len(cells))
	copy(update.Cells, cells)

	return update, nil
}
