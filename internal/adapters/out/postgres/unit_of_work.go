// Package postgres provides the GORM-based Unit of Work and repository
// adapters. A unit of work wraps one database transaction; every repository
// obtained from it runs inside that transaction, and the ForUpdate lookups
// take row locks so the dispatch invariants (one winner per order, one
// active order per partner, settle-once) hold across server processes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/arearepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/settingsrepo"
	"dispatch/internal/adapters/out/postgres/tariffrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate modified during the unit of work, kept for
// post-commit processing such as event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection pool. Each Create call returns a fresh instance, so concurrent
// operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates the factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork over a GORM transaction. Before
// Begin, repositories fall back to the main connection; after Begin they are
// bound to the transaction until Commit or Rollback closes it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin with a transaction
// already open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Fails when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Fails when none is active, which makes
// the usual deferred rollback after a successful commit a harmless error.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PartnerRepository returns a partner repository bound to the transaction.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

// AreaRepository returns an area repository bound to the transaction.
func (uow *GormUnitOfWork) AreaRepository() ports.AreaRepository {
	return arearepo.NewGormAreaRepository(uow.conn())
}

// ChargeRuleRepository returns a charge rule repository bound to the transaction.
func (uow *GormUnitOfWork) ChargeRuleRepository() ports.ChargeRuleRepository {
	return tariffrepo.NewGormChargeRuleRepository(uow.conn())
}

// SettingsRepository returns a settings repository bound to the transaction.
func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
