package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a business operation. Every
// repository obtained from it runs inside the same store transaction, so a
// command either commits all of its writes or none of them. Client code
// drives the lifecycle explicitly: Begin, repository work, Commit, with a
// deferred Rollback as the failure path.
type UnitOfWork interface {
	// Begin starts a store transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction. Fails when none is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Fails when none is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository

	// PartnerRepository returns a partner repository bound to the transaction.
	PartnerRepository() PartnerRepository

	// AreaRepository returns an area repository bound to the transaction.
	AreaRepository() AreaRepository

	// ChargeRuleRepository returns a charge rule repository bound to the transaction.
	ChargeRuleRepository() ChargeRuleRepository

	// SettingsRepository returns a settings repository bound to the transaction.
	SettingsRepository() SettingsRepository
}
