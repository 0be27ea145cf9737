package postgres

import (
	"context"

	"hail/internal/domain/repository"
	"hail/internal/errors"

	"gorm.io/gorm"
)

// gormRepositoryFactory hands out repositories bound to a single *gorm.DB,
// which inside Execute is the transaction handle.
type gormRepositoryFactory struct {
	db *gorm.DB
}

// IdentityRepo returns an identity repository bound to the factory's handle.
func (f *gormRepositoryFactory) IdentityRepo() repository.IdentityRepository {
	return NewIdentityRepository(f.db)
}

// VendorRepo returns a vendor repository bound to the factory's handle.
func (f *gormRepositoryFactory) VendorRepo() repository.VendorRepository {
	return NewVendorRepository(f.db)
}

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a GORM-backed transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a database transaction. Repositories obtained from
// the factory passed to fn all share that transaction; returning an error
// rolls everything back.
func (m *gormTransactionManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{db: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction execute failed")
	}

	return nil
}
