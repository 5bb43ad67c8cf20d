package network

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/hex/pkg/messages"
	"nhooyr.io/websocket"
)

// WriteTimeout bounds a single write to a watcher
const WriteTimeout = 5 * time.Second

// WriteGameUpdateToWS writes a serialized GameUpdate to a watcher connection
func WriteGameUpdateToWS(ctx context.Context, conn MessageWriter, update *messages.GameUpdate) error {
	b, err := messages.SerializeGameUpdate(update)
	if err != nil {
		return fmt.Errorf("failed to serialize game update: %v", err)
	}
	return WriteToWS(ctx, conn, b)
}

// WriteToWS writes an already serialized message to a watcher connection
func WriteToWS(ctx context.Context, conn MessageWriter, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadGameUpdateFromWS reads a GameUpdate from a websocket connection
func ReadGameUpdateFromWS(ctx context.Context, conn *websocket.Conn) (*messages.GameUpdate, error) {
	typ, b, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	if typ != websocket.MessageBinary {
		return nil, fmt.Errorf("unexpected message type %v", typ)
	}

	update, err := messages.DeserializeGameUpdate(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game update: %v", err)
	}

	return update, nil
}
