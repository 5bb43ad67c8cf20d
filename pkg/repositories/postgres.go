package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database at connStr.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}
	return &PostgresRepository{
		pool: pool,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return pool, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveGame(ctx context.Context, game *models.Game) error {
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
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (game_id) DO UPDATE SET contents = $4, winner = $5, updated_at = $7;
	`
	_, err = r.pool.Exec(ctx, q, game.ID, height, width, contents, winnerValue(game.Winner), createdAt, now)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %v", game.ID, err)
	}

	return nil
}

func (r *PostgresRepository) LoadGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	q := `
	SELECT contents, winner, created_at, updated_at FROM games WHERE game_id = $1;
	`
	var contents string
	var winner *int16
	game := &models.Game{ID: gameID}
	if err := r.pool.QueryRow(ctx, q, gameID).Scan(&contents, &winner, &game.CreatedAt, &game.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func (r *PostgresRepository) ListGames(ctx context.Context) ([]*models.GameSummary, error) {
	q := `
	SELECT game_id, height, width, winner, updated_at FROM games ORDER BY updated_at DESC;
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.GameSummary, 0)
	for rows.Next() {
		var winner *int16
		game := &models.GameSummary{}
		if err := rows.Scan(&game.ID, &game.Height, &game.Width, &winner, &game.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
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

func (r *PostgresRepository) DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	q := `
	DELETE FROM games WHERE game_id = $1;
	`
	tag, err := r.pool.Exec(ctx, q, gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}

	return nil
}
