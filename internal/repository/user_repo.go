package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cybertcm/internal/domain"
)

// UserRepository persists respondents, identified by nickname.
type UserRepository interface {
	GetOrCreate(ctx context.Context, nickname string) (domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (domain.User, error)
	List(ctx context.Context) ([]domain.UserSummary, error)
}

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) GetOrCreate(ctx context.Context, nickname string) (domain.User, error) {
	user, err := r.GetByNickname(ctx, nickname)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	user = domain.User{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		CreatedAt: time.Now().UTC(),
	}
	const query = `
		INSERT INTO users (id, nickname, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (nickname) DO UPDATE SET nickname = EXCLUDED.nickname
		RETURNING id, nickname, created_at
	`
	err = r.pool.QueryRow(ctx, query, user.ID, user.Nickname, user.CreatedAt).Scan(
		&user.ID,
		&user.Nickname,
		&user.CreatedAt,
	)
	return user, err
}

func (r *PgUserRepository) GetByNickname(ctx context.Context, nickname string) (domain.User, error) {
	const query = `
		SELECT id, nickname, created_at
		FROM users
		WHERE nickname = $1
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, nickname).Scan(
		&u.ID,
		&u.Nickname,
		&u.CreatedAt,
	)
	return u, err
}

func (r *PgUserRepository) List(ctx context.Context) ([]domain.UserSummary, error) {
	const query = `
		SELECT u.id, u.nickname, u.created_at, COUNT(res.id) AS result_count
		FROM users u
		LEFT JOIN results res ON res.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Nickname, &u.CreatedAt, &u.ResultCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
