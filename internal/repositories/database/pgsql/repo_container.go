package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bistrobooks/backoffice/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Ledger:     newLedgerRepository(dbPool),
		Operations: newOperationsRepository(dbPool),
	}
}
