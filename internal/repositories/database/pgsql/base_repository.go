package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories. Every
// table this service touches is owned by the hosted backend and read-only
// here, so there is no transaction plumbing.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
