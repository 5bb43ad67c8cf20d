package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/repositories"
	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/cbodonnell/hex/pkg/state"
	"github.com/google/uuid"
)

// ShutdownSaveTimeout bounds the final save when the worker stops
const ShutdownSaveTimeout = 10 * time.Second

type SaveGameWorker struct {
	repository   repositories.Repository
	saveGameChan <-chan SaveGameRequest
	stateManager state.StateManager
	interval     time.Duration
	// savedMoves is the move count of the last snapshot saved per game.
	// Snapshots with fewer moves are skipped.
	savedMoves   map[uuid.UUID]int
}

type NewSaveGameWorkerOptions struct {
	Repository   repositories.Repository
	SaveGameChan <-chan SaveGameRequest
	StateManager state.StateManager
	Interval     time.Duration
}

type SaveGameRequest struct {
	Game *models.Game
}

// NewSaveGameWorker creates a new SaveGameWorker.
// The worker processes save requests from the API handlers and
// periodically saves every changed session to the repository.
func NewSaveGameWorker(opts NewSaveGameWorkerOptions) *SaveGameWorker {
	return &SaveGameWorker{
		repository:   opts.Repository,
		saveGameChan: opts.SaveGameChan,
		stateManager: opts.StateManager,
		interval:     opts.Interval,
		savedMoves:   make(map[uuid.UUID]int),
	}
}

// Start runs until ctx is cancelled, then saves the sessions changed since the last sweep.
func (w *SaveGameWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownSaveTimeout)
			w.saveChanged(shutdownCtx)
			cancel()
			return
		case saveRequest := <-w.saveGameChan:
			w.saveGame(ctx, saveRequest.Game)
		case <-ticker.C:
			w.saveChanged(ctx)
		}
	}
}

func (w *SaveGameWorker) saveChanged(ctx context.Context) {
	games, err := w.stateManager.Changed(ctx)
	if err != nil {
		log.Error("Failed to get changed games: %v", err)
		return
	}
	for _, game := range games {
		w.saveGame(ctx, game)
	}
	if len(games) > 0 {
		log.Debug("Saved %d changed games", len(games))
	}
}

func (w *SaveGameWorker) saveGame(ctx context.Context, game *models.Game) {
	moves := game.Snapshot.MovesPlayed()
	if last, ok := w.savedMoves[game.ID]; ok && moves < last {
		log.Debug("Skipping stale snapshot of game %s (%d moves, saved %d)", game.ID, moves, last)
		return
	}
	if err := w.repository.SaveGame(ctx, game); err != nil {
		log.Error("Failed to save game %s: %v", game.ID, err)
		return
	}
	w.savedMoves[game.ID] = moves
}
