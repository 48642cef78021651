package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbmworship/songlibrary/internal/domain/admins"
)

var _ admins.Repository = (*AdminsRepository)(nil)

type AdminsRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (r *AdminsRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func (r *AdminsRepository) GetByUsername(ctx context.Context, username string) (*admins.Admin, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT admin_id, username, password_hash
  FROM admins
 WHERE username = $1
`, username)

	var admin admins.Admin
	if err := row.Scan(&admin.AdminID, &admin.Username, &admin.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admins.ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}
