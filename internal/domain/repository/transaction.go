// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// RepositoryFactory creates repository instances bound to one transaction.
// Use cases receive it inside TransactionManager.Execute so every repository
// call within the callback shares a single atomic transaction.
type RepositoryFactory interface {
	// IdentityRepo returns an identity repository bound to the transaction.
	IdentityRepo() IdentityRepository

	// VendorRepo returns a vendor repository bound to the transaction.
	VendorRepo() VendorRepository
}

// TransactionManager runs a unit of work inside a database transaction.
// If fn returns an error the transaction is rolled back and no rows change.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
