package repository

import "context"

// TransactionManager runs multi-step writes atomically without exposing the
// database driver to the usecase layer.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction. Sign-up
// writes the profile and its credential through it.
type RepositoryFactory interface {
	NewProfileRepository() ProfileRepository
	NewCredentialRepository() CredentialRepository
}
