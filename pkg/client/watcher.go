package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/network"
	"nhooyr.io/websocket"
)

// WatchClient follows a single game over the server's watch endpoint.
type WatchClient struct {
	serverAddr string
	updateChan chan<- *messages.GameUpdate
	conn       *websocket.Conn
}

// NewWatchClient creates a new watch client. Received updates are sent on updateChan.
func NewWatchClient(serverAddr string, updateChan chan<- *messages.GameUpdate) *WatchClient {
	return &WatchClient{
		serverAddr: serverAddr,
		updateChan: updateChan,
	}
}

// Connect establishes a connection to the watch endpoint.
func (c *WatchClient) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverAddr)
	conn, _, err := websocket.Dial(ctx, c.serverAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	c.conn = conn
	return nil
}

// HandleMessages reads updates until the context is cancelled or the server
// closes the connection. A normal closure returns nil.
func (c *WatchClient) HandleMessages(ctx context.Context) error {
	if c.conn == nil {
		return errors.New("not connected")
	}
	defer c.conn.Close(websocket.StatusNormalClosure, "")

	for {
		update, err := network.ReadGameUpdateFromWS(ctx, c.conn)
		if err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				log.Trace("Connection closed for %s", c.serverAddr)
				return nil
			}
			return fmt.Errorf("failed to read game update: %w", err)
		}
		log.Trace("Received update for game %s", update.GameID)

		select {
		case c.updateChan <- update:
		case <-ctx.Done():
			return nil
		}
	}
}
