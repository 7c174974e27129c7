package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kellum/api/internal/models"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

func (r *MovieRepository) Create(ctx context.Context, movie models.Movie) error {
	const query = `
		INSERT INTO movies (id, title, format, rating, cover_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Format,
		movie.Rating,
		movie.CoverKey,
	)
	return err
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (models.Movie, error) {
	const query = `
		SELECT id, title, format, rating, cover_key, created_at, updated_at
		FROM movies WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var movie models.Movie
	if err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Format,
		&movie.Rating,
		&movie.CoverKey,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		return models.Movie{}, err
	}
	return movie, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	const query = `
		SELECT id, title, format, rating, cover_key, created_at, updated_at
		FROM movies ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		if err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Format,
			&movie.Rating,
			&movie.CoverKey,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		); err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

func (r *MovieRepository) Update(ctx context.Context, movie models.Movie) error {
	const query = `
		UPDATE movies
		SET title = $2, format = $3, rating = $4, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Format,
		movie.Rating,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) SetCoverKey(ctx context.Context, id string, coverKey string) error {
	const query = `
		UPDATE movies SET cover_key = $2, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, coverKey)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM movies WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) DeleteAll(ctx context.Context) error {
	const query = `DELETE FROM movies`
	_, err := r.pool.Exec(ctx, query)
	return err
}
