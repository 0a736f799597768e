package repository

import "context"

// TransactionManager runs use case work inside one database transaction
// without exposing the driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn within a transaction. An error from fn rolls back, otherwise it commits.
	// Every repository obtained from the factory shares the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewAnnouncementRepository() AnnouncementRepository
	NewApplicationRepository() ApplicationRepository
	NewRouteRepository() RouteRepository
}
