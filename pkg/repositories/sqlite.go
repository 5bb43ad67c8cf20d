package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and runs every migration
// found in the migrations directory in file name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	dir, err := os.ReadDir(migrations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range dir {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGame(ctx context.Context, game *models.Game) error {
	contents, err := encodeSnapshot(game.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode game %s: %v", game.ID, err)
	}
	height, width := dimensions(game.Snapshot)

	now := time.Now().UnixMilli()
	createdAt := game.CreatedAt
	if createdAt == 0 {
		createdAt = now
	}

	q := `
	INSERT INTO games (game_id, height, width, contents, winner, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (game_id) DO UPDATE SET contents = excluded.contents, winner = excluded.winner, updated_at = excluded.updated_at;
	`
	_, err = r.db.ExecContext(ctx, q, game.ID.String(), height, width, contents, winnerValue(game.Winner), createdAt, now)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %v", game.ID, err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	q := `
	SELECT contents, winner, created_at, updated_at FROM games WHERE game_id = ?;
	`
	var contents string
	var winner *int16
	game := &models.Game{ID: gameID}
	if err := r.db.QueryRowContext(ctx, q, gameID.String()).Scan(&contents, &winner, &game.CreatedAt, &game.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}

	snapshot, err := decodeSnapshot(contents)
	if err != nil {
		return nil, err
	}
	game.Snapshot = snapshot
	if game.Winner, err = winnerFromValue(winner); err != nil {
		return nil, err
	}

	return game, nil
}

func (r *SQLiteRepository) ListGames(ctx context.Context) ([]*models.GameSummary, error) {
	q := `
	SELECT game_id, height, width, winner, updated_at FROM games ORDER BY updated_at DESC;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.GameSummary, 0)
	for rows.Next() {
		var id string
		var winner *int16
		game := &models.GameSummary{}
		if err := rows.Scan(&id, &game.Height, &game.Width, &winner, &game.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		if game.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse game id %q: %v", id, err)
		}
		if game.Winner, err = winnerFromValue(winner); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %v", err)
	}

	return games, nil
}

func (r *SQLiteRepository) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	q := `
	DELETE FROM games WHERE game_id = ?;
	`
	result, err := r.db.ExecContext(ctx, q, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to delete game: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if affected == 0 {
		return &ErrNotFound{}
	}

	return nil
}
