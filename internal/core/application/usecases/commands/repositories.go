// Package commands contains the write-side operations of the dispatch core.
// Every command follows the same shape: a constructor-guarded command struct,
// a handler holding a unit-of-work factory, and a Handle method that runs
// validation, one transaction, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces scoped to what each command actually touches.
// Handlers declare the narrowest shape they need; the postgres unit of work
// satisfies all of them.
type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides the partner repository bound to the transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AreaRepoFactory provides the area repository bound to the transaction.
	AreaRepoFactory interface {
		AreaRepository() ports.AreaRepository
	}

	// ChargeRuleRepoFactory provides the charge rule repository bound to the transaction.
	ChargeRuleRepoFactory interface {
		ChargeRuleRepository() ports.ChargeRuleRepository
	}

	// SettingsRepoFactory provides the settings repository bound to the transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW covers commands that only touch orders (rating).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW covers the accept and advance commands, which coordinate
	// the order and partner aggregates in one transaction.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// DispatchUoWFactory creates DispatchUoW instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// IntakeUoW covers order creation: pricing lookup, commission setting
	// and the order insert.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		ChargeRuleRepoFactory
		SettingsRepoFactory
	}

	// IntakeUoWFactory creates IntakeUoW instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// PartnerUoW covers partner-only commands (register, approve, remove,
	// area and availability changes).
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates PartnerUoW instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// PartnerAreaUoW covers the partner area change, which checks the area
	// exists before assigning it.
	PartnerAreaUoW interface {
		TxManager
		PartnerRepoFactory
		AreaRepoFactory
	}

	// PartnerAreaUoWFactory creates PartnerAreaUoW instances.
	PartnerAreaUoWFactory interface {
		Create() PartnerAreaUoW
	}

	// AreaUoW covers area creation.
	AreaUoW interface {
		TxManager
		AreaRepoFactory
	}

	// AreaUoWFactory creates AreaUoW instances.
	AreaUoWFactory interface {
		Create() AreaUoW
	}

	// TariffUoW covers charge rule upserts, which check both areas exist
	// before writing the rule.
	TariffUoW interface {
		TxManager
		AreaRepoFactory
		ChargeRuleRepoFactory
	}

	// TariffUoWFactory creates TariffUoW instances.
	TariffUoWFactory interface {
		Create() TariffUoW
	}

	// SettingsUoW covers commission rate changes.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates SettingsUoW instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
