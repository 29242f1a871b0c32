package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repos bundles the per-entity repos bound to one connection or transaction.
type Repos struct {
	Venues  VenueRepo
	Artists ArtistRepo
	Shows   ShowRepo
}

// NewRepos binds every repo to db.
func NewRepos(db db) Repos {
	return Repos{
		Venues:  NewVenueRepo(db),
		Artists: NewArtistRepo(db),
		Shows:   NewShowRepo(db),
	}
}

// TxManager runs a unit of work inside a database transaction.
type TxManager interface {
	// WithinTx begins a transaction, hands fn repos bound to it, and commits
	// when fn returns nil. Any error (or panic) from fn rolls the transaction
	// back and the error is returned unchanged. The connection is released
	// back to the pool on every path.
	WithinTx(ctx context.Context, fn func(Repos) error) error
}

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx (as a savepoint).
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pgTxManager struct {
	db beginner
}

// NewTxManager constructs a TxManager that begins transactions on db.
// In production pass *pgxpool.Pool; tests may pass a pgx.Tx, in which case
// each unit of work runs in a savepoint.
func NewTxManager(db beginner) TxManager {
	return &pgTxManager{db: db}
}

func (m *pgTxManager) WithinTx(ctx context.Context, fn func(Repos) error) error {
	return pgx.BeginFunc(ctx, m.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
}
