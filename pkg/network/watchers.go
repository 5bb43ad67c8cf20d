package network

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

const (
	// WatcherIDMaxRetries represents the maximum number of retries when generating a unique ID
	WatcherIDMaxRetries = 1024
)

// MessageWriter is the write side of a watcher connection. *websocket.Conn implements it.
type MessageWriter interface {
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// Watcher is a connection following the moves of one game
type Watcher struct {
	ID     uint32
	GameID uuid.UUID
	Conn   MessageWriter
}

// WatcherManager tracks the watchers of every game
type WatcherManager struct {
	watchers     map[uint32]*Watcher
	watchersLock sync.RWMutex
}

func NewWatcherManager() *WatcherManager {
	return &WatcherManager{
		watchers: make(map[uint32]*Watcher),
	}
}

// ConnectWatcher registers conn as a watcher of gameID and returns its ID
func (wm *WatcherManager) ConnectWatcher(gameID uuid.UUID, conn MessageWriter) (uint32, error) {
	wm.watchersLock.Lock()
	defer wm.watchersLock.Unlock()

	watcherID, err := wm.generateUniqueID(WatcherIDMaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	wm.watchers[watcherID] = &Watcher{
		ID:     watcherID,
		GameID: gameID,
		Conn:   conn,
	}

	return watcherID, nil
}

// DisconnectWatcher removes a watcher. It reports whether the watcher was registered.
func (wm *WatcherManager) DisconnectWatcher(watcherID uint32) bool {
	wm.watchersLock.Lock()
	defer wm.watchersLock.Unlock()

	if _, ok := wm.watchers[watcherID]; !ok {
		return false
	}
	delete(wm.watchers, watcherID)
	return true
}

// GetWatchers returns a copy of the watchers of gameID
func (wm *WatcherManager) GetWatchers(gameID uuid.UUID) []*Watcher {
	wm.watchersLock.RLock()
	defer wm.watchersLock.RUnlock()
	watchers := make([]*Watcher, 0)
	for _, watcher := range wm.watchers {
		if watcher.GameID == gameID {
			copy := *watcher
			watchers = append(watchers, &copy)
		}
	}
	return watchers
}

func (wm *WatcherManager) Count() int {
	wm.watchersLock.RLock()
	defer wm.watchersLock.RUnlock()
	return len(wm.watchers)
}

// generateUniqueID generates a unique watcher ID with a maximum number of retries
// it reads from the watchers, so it needs to be locked before calling
func (wm *WatcherManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := wm.watchers[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
