package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbmworship/songlibrary/internal/domain/admins"
	"github.com/cbmworship/songlibrary/internal/domain/catalog"
	"github.com/cbmworship/songlibrary/internal/domain/leaders"
	"github.com/cbmworship/songlibrary/internal/domain/services"
)

// Repository aggregates the per-domain repositories over one shared pool.
// When tx is set, every repository issued from it runs inside that
// transaction.
type Repository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Catalog() catalog.Repository {
	return &CatalogRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) Leaders() leaders.Repository {
	return &LeadersRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) Services() services.Repository {
	return &ServicesRepository{pool: r.pool, tx: r.tx}
}

func (r *Repository) Admins() admins.Repository {
	return &AdminsRepository{pool: r.pool, tx: r.tx}
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// runInTx executes fn inside a transaction, reusing tx when the caller is
// already inside one. Any error from fn rolls the transaction back.
func runInTx(ctx context.Context, pool *pgxpool.Pool, tx pgx.Tx, fn func(q queryer) error) error {
	if tx != nil {
		return fn(tx)
	}

	started, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(started); err != nil {
		_ = started.Rollback(ctx)
		return err
	}

	if err := started.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
