package handlers

import (
	"net/http"

	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/network"
	"github.com/cbodonnell/hex/pkg/repositories"
	"github.com/cbodonnell/hex/pkg/state"
	"nhooyr.io/websocket"
)

// HandleWatchGame upgrades the request to a websocket that receives the
// current board followed by a GameUpdate for every move of the game.
func HandleWatchGame(repository repositories.Repository, stateManager state.StateManager, watcherManager *network.WatcherManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := parseGameID(w, r)
		if !ok {
			return
		}
		if !ensureSession(w, r, repository, stateManager, gameID) {
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		watcherID, err := watcherManager.ConnectWatcher(gameID, conn)
		if err != nil {
			log.Error("Failed to register watcher for game %s: %v", gameID, err)
			conn.Close(websocket.StatusInternalError, "failed to register watcher")
			return
		}
		defer watcherManager.DisconnectWatcher(watcherID)
		log.Debug("Watcher %d connected to game %s", watcherID, gameID)

		var initial *messages.GameUpdate
		err = stateManager.View(r.Context(), gameID, func(s *game.Session) error {
			initial = messages.NewGameStateUpdate(gameID, s)
			return nil
		})
		if err != nil {
			log.Error("Failed to read game %s: %v", gameID, err)
			return
		}
		if err := network.WriteGameUpdateToWS(r.Context(), conn, initial); err != nil {
			log.Error("Failed to send game %s to watcher %d: %v", gameID, watcherID, err)
			return
		}

		// watchers only listen; the read side just waits for the close
		ctx := conn.CloseRead(r.Context())
		<-ctx.Done()
		log.Debug("Watcher %d disconnected from game %s", watcherID, gameID)
	}
}
