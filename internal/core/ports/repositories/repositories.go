package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is populated by the database layer at startup and injected downward.
type RepositoryProvider struct {
	LedgerRepo  LedgerRepositoryFacade
	ProjectRepo ProjectRepositoryFacade
}
