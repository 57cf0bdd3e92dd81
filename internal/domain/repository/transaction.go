package repository

import "context"

// TransactionManager runs multi-step writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
// Following a masjid may register the caller's device in the same transaction.
type RepositoryFactory interface {
	NewSubscriptionRepository() SubscriptionRepository
	NewDeviceRepository() DeviceRepository
}
