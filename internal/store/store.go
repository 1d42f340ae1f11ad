package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the storage collaborator, backed by a pgx pool. Record ids
// are assigned here at insert time, never by the caller.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
