package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kellum/api/internal/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) *GameRepository {
	return &GameRepository{pool: pool}
}

func (r *GameRepository) Create(ctx context.Context, game models.Game) error {
	const query = `
		INSERT INTO games (id, title, platform, rating, players, cover_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Platform,
		game.Rating,
		game.Players,
		game.CoverKey,
	)
	return err
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (models.Game, error) {
	const query = `
		SELECT id, title, platform, rating, players, cover_key, created_at, updated_at
		FROM games WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var game models.Game
	if err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Platform,
		&game.Rating,
		&game.Players,
		&game.CoverKey,
		&game.CreatedAt,
		&game.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		return models.Game{}, err
	}
	return game, nil
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	const query = `
		SELECT id, title, platform, rating, players, cover_key, created_at, updated_at
		FROM games ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(
			&game.ID,
			&game.Title,
			&game.Platform,
			&game.Rating,
			&game.Players,
			&game.CoverKey,
			&game.CreatedAt,
			&game.UpdatedAt,
		); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func (r *GameRepository) Update(ctx context.Context, game models.Game) error {
	const query = `
		UPDATE games
		SET title = $2, platform = $3, rating = $4, players = $5, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Platform,
		game.Rating,
		game.Players,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) SetCoverKey(ctx context.Context, id string, coverKey string) error {
	const query = `
		UPDATE games SET cover_key = $2, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, coverKey)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM games WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM games`
	_, err := r.pool.Exec(ctx, query)
	return err
}
