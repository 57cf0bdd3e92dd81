// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"masjidcast/internal/domain/repository"
	"masjidcast/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory builds repositories on a single *gorm.DB transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside db.Transaction, which rolls back on error or panic.
// Domain errors returned by fn pass through unwrapped.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}
