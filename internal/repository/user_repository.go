package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"kellum/api/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (id, username, credential_hash, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.pool.Exec(ctx, query, user.ID, user.Username, user.CredentialHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByCredentials matches username and credential hash in one SELECT,
// both byte-exact and case-sensitive. A miss on either column is the
// same no-row result, so callers cannot tell which part was wrong.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, credentialHash string) (models.User, error) {
	const query = `
		SELECT id, username, credential_hash, created_at
		FROM users
		WHERE username = $1 AND credential_hash = $2
	`

	row := r.pool.QueryRow(ctx, query, username, credentialHash)
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.CredentialHash,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
