package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminCredentialRepository stores the single shared admin passphrase hash.
type AdminCredentialRepository interface {
	GetHash(ctx context.Context) (string, error)
	SetHash(ctx context.Context, hash string) error
}

type PgAdminCredentialRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminCredentialRepository(pool *pgxpool.Pool) *PgAdminCredentialRepository {
	return &PgAdminCredentialRepository{pool: pool}
}

// GetHash returns the stored hash; pgx.ErrNoRows when not yet seeded.
func (r *PgAdminCredentialRepository) GetHash(ctx context.Context) (string, error) {
	const query = `
		SELECT passphrase_hash
		FROM admin_credentials
		WHERE id = 1
	`
	var hash string
	err := r.pool.QueryRow(ctx, query).Scan(&hash)
	return hash, err
}

func (r *PgAdminCredentialRepository) SetHash(ctx context.Context, hash string) error {
	const query = `
		INSERT INTO admin_credentials (id, passphrase_hash, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			passphrase_hash = EXCLUDED.passphrase_hash,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, hash, time.Now().UTC())
	return err
}
