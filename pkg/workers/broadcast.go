package workers

import (
	"context"

	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/network"
	"nhooyr.io/websocket"
)

type BroadcastUpdateWorker struct {
	watcherManager *network.WatcherManager
	updateChan     <-chan *messages.GameUpdate
}

type NewBroadcastUpdateWorkerOptions struct {
	WatcherManager *network.WatcherManager
	UpdateChan     <-chan *messages.GameUpdate
}

// NewBroadcastUpdateWorker creates a worker that pushes every game update
// to the watchers of that game.
func NewBroadcastUpdateWorker(opts NewBroadcastUpdateWorkerOptions) *BroadcastUpdateWorker {
	return &BroadcastUpdateWorker{
		watcherManager: opts.WatcherManager,
		updateChan:     opts.UpdateChan,
	}
}

func (w *BroadcastUpdateWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-w.updateChan:
			w.broadcast(ctx, update)
		}
	}
}

func (w *BroadcastUpdateWorker) broadcast(ctx context.Context, update *messages.GameUpdate) {
	watchers := w.watcherManager.GetWatchers(update.GameID)
	if len(watchers) == 0 {
		return
	}

	payload, err := messages.SerializeGameUpdate(update)
	if err != nil {
		log.Error("Failed to serialize game update for %s: %v", update.GameID, err)
		return
	}

	for _, watcher := range watchers {
		if err := network.WriteToWS(ctx, watcher.Conn, payload); err != nil {
			log.Warn("Dropping watcher %d of game %s: %v", watcher.ID, update.GameID, err)
			if w.watcherManager.DisconnectWatcher(watcher.ID) {
				watcher.Conn.Close(websocket.StatusInternalError, "write failed")
			}
		}
	}
	log.Trace("Broadcast update for game %s to %d watchers", update.GameID, len(watchers))
}
