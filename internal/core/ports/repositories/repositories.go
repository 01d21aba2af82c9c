package repositories

// RepositoryProvider aggregates all repository implementations handed to the
// service container.
type RepositoryProvider struct {
	Ledger     LedgerReader
	Operations OperationsReader
}
