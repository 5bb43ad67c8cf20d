package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/hex/pkg/board"
	"github.com/cbodonnell/hex/pkg/game"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/players"
	"github.com/cbodonnell/hex/pkg/repositories"
	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/cbodonnell/hex/pkg/state"
	"github.com/cbodonnell/hex/pkg/workers"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// GameIDVar is the route variable holding the game id
const GameIDVar = "gameID"

func HandleCreateGame(stateManager state.StateManager, saveGameChan chan<- workers.SaveGameRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &CreateGameRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		if !board.ValidDimensions(req.Height, req.Width) {
			http.Error(w, fmt.Sprintf("Board dimensions must be between %d and %d", board.MinDimension, board.MaxDimension), http.StatusBadRequest)
			return
		}

		s, err := game.New(req.Height, req.Width)
		if err != nil {
			log.Error("failed to create game: %v", err)
			http.Error(w, "Failed to create game", http.StatusInternalServerError)
			return
		}

		gameID := uuid.New()
		createdAt := time.Now().UnixMilli()
		resp := newGameResponse(gameID, s)
		model := state.GameModel(gameID, s, createdAt)
		if err := stateManager.Add(r.Context(), gameID, s, createdAt); err != nil {
			log.Error("failed to add game %s: %v", gameID, err)
			http.Error(w, "Failed to create game", http.StatusInternalServerError)
			return
		}
		requestSave(r.Context(), saveGameChan, model)
		log.Info("Created %dx%d game %s", req.Height, req.Width, gameID)

		writeJSON(w, http.StatusCreated, resp)
	}
}

func HandleListGames(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := repository.ListGames(r.Context())
		if err != nil {
			log.Error("failed to list games: %v", err)
			http.Error(w, "Failed to list games", http.StatusInternalServerError)
			return
		}

		resp := make([]*GameSummaryResponse, 0, len(games))
		for _, g := range games {
			summary := &GameSummaryResponse{
				ID:        g.ID,
				Height:    g.Height,
				Width:     g.Width,
				UpdatedAt: g.UpdatedAt,
			}
			if g.Winner != nil {
				summary.Winner = g.Winner.String()
			}
			resp = append(resp, summary)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func HandleGetGame(repository repositories.Repository, stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := parseGameID(w, r)
		if !ok {
			return
		}
		if !ensureSession(w, r, repository, stateManager, gameID) {
			return
		}

		var resp *GameResponse
		err := stateManager.View(r.Context(), gameID, func(s *game.Session) error {
			resp = newGameResponse(gameID, s)
			return nil
		})
		if err != nil {
			writeGameError(w, gameID, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandlePlayMove plays the requested cell for the player to move.
func HandlePlayMove(repository repositories.Repository, stateManager state.StateManager, saveGameChan chan<- workers.SaveGameRequest, updateChan chan<- *messages.GameUpdate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := parseGameID(w, r)
		if !ok {
			return
		}
		req := &MoveRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		if !ensureSession(w, r, repository, stateManager, gameID) {
			return
		}

		p := board.Position{Row: req.Row, Column: req.Column}
		playMove(w, r, stateManager, saveGameChan, updateChan, gameID, func(s *game.Session, player board.PlayerID) (board.Position, error) {
			return p, nil
		})
	}
}

// HandleAutoMove plays the automated formula move for the player to move.
func HandleAutoMove(repository repositories.Repository, stateManager state.StateManager, saveGameChan chan<- workers.SaveGameRequest, updateChan chan<- *messages.GameUpdate) http.HandlerFunc {
	mover := players.NewAutoMover()
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := parseGameID(w, r)
		if !ok {
			return
		}
		if !ensureSession(w, r, repository, stateManager, gameID) {
			return
		}

		playMove(w, r, stateManager, saveGameChan, updateChan, gameID, mover.NextMove)
	}
}

// HandleDeleteGame drops the game from the cache and the repository.
// A game that was cached but not yet saved counts as deleted.
func HandleDeleteGame(repository repositories.Repository, stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := parseGameID(w, r)
		if !ok {
			return
		}

		cached := true
		if err := stateManager.Remove(r.Context(), gameID); err != nil {
			if !errors.Is(err, state.ErrGameNotFound) {
				log.Error("failed to remove game %s: %v", gameID, err)
				http.Error(w, "Failed to delete game", http.StatusInternalServerError)
				return
			}
			cached = false
		}

		if err := repository.DeleteGame(r.Context(), gameID); err != nil {
			if !repositories.IsNotFound(err) {
				log.Error("failed to delete game %s: %v", gameID, err)
				http.Error(w, "Failed to delete game", http.StatusInternalServerError)
				return
			}
			if !cached {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
		}
		log.Info("Deleted game %s", gameID)

		w.WriteHeader(http.StatusNoContent)
	}
}

type moveFunc func(s *game.Session, player board.PlayerID) (board.Position, error)

func playMove(w http.ResponseWriter, r *http.Request, stateManager state.StateManager, saveGameChan chan<- workers.SaveGameRequest, updateChan chan<- *messages.GameUpdate, gameID uuid.UUID, next moveFunc) {
	var resp *MoveResponse
	err := stateManager.Update(r.Context(), gameID, func(s *game.Session) error {
		if s.Over() {
			return game.ErrGameOver
		}
		player := s.Turn()
		p, err := next(s, player)
		if err != nil {
			return err
		}
		result, err := s.Play(player, p)
		if err != nil {
			return err
		}
		resp = newMoveResponse(gameID, s, player, p, result)

		// Queued under the game lock to keep moves in order. Sends must not
		// block here; a dropped save is left to the periodic sweep.
		select {
		case saveGameChan <- workers.SaveGameRequest{Game: state.GameModel(gameID, s, 0)}:
		default:
			log.Warn("Save queue full, leaving game %s to the periodic sweep", gameID)
		}
		select {
		case updateChan <- messages.NewGameUpdate(gameID, s, player, p, result):
		default:
			log.Warn("Update queue full, dropping update for game %s", gameID)
		}
		return nil
	})
	if err != nil {
		writeGameError(w, gameID, err)
		return
	}
	log.Debug("Game %s: player %s played %d %d (%s)", gameID, resp.Player, resp.Row, resp.Column, resp.Result)

	writeJSON(w, http.StatusOK, resp)
}

// ensureSession makes sure the game is cached in the state manager, loading
// it from the repository when needed. It writes the error response and
// returns false when the game cannot be made available.
func ensureSession(w http.ResponseWriter, r *http.Request, repository repositories.Repository, stateManager state.StateManager, gameID uuid.UUID) bool {
	if stateManager.Exists(r.Context(), gameID) {
		return true
	}

	stored, err := repository.LoadGame(r.Context(), gameID)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return false
		}
		log.Error("failed to load game %s: %v", gameID, err)
		http.Error(w, "Failed to load game", http.StatusInternalServerError)
		return false
	}

	s, err := game.Load(stored.Snapshot)
	if err != nil {
		log.Error("failed to restore game %s: %v", gameID, err)
		http.Error(w, "Failed to load game", http.StatusInternalServerError)
		return false
	}
	if stored.Winner != nil {
		if err := s.RestoreWinner(*stored.Winner); err != nil {
			log.Error("failed to restore winner of game %s: %v", gameID, err)
			http.Error(w, "Failed to load game", http.StatusInternalServerError)
			return false
		}
	}

	if err := stateManager.Add(r.Context(), gameID, s, stored.CreatedAt); err != nil && !errors.Is(err, state.ErrGameExists) {
		log.Error("failed to cache game %s: %v", gameID, err)
		http.Error(w, "Failed to load game", http.StatusInternalServerError)
		return false
	}
	log.Debug("Loaded game %s from the repository", gameID)
	return true
}

func parseGameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	gameID, err := uuid.Parse(mux.Vars(r)[GameIDVar])
	if err != nil {
		http.Error(w, "Failed to parse game id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return gameID, true
}

func requestSave(ctx context.Context, saveGameChan chan<- workers.SaveGameRequest, model *models.Game) {
	select {
	case saveGameChan <- workers.SaveGameRequest{Game: model}:
	case <-ctx.Done():
		log.Warn("Request cancelled before game %s was queued for saving", model.ID)
	}
}

func writeGameError(w http.ResponseWriter, gameID uuid.UUID, err error) {
	switch {
	case errors.Is(err, state.ErrGameNotFound):
		http.Error(w, "Game not found", http.StatusNotFound)
	case errors.Is(err, board.ErrOutOfBounds):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, board.ErrOccupied), errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotYourTurn):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error("failed to update game %s: %v", gameID, err)
		http.Error(w, "Failed to update game", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
