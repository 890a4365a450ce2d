package repository

import "context"

// TransactionManager runs use-case steps atomically without exposing the
// database driver to the use case layer.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// Repositories obtained from txRepoFactory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	VendorRepo() VendorRepository
	ShopRepo() ShopRepository
}
