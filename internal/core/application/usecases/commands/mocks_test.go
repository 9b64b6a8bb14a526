package commands_test

import (
	"context"
	"errors"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) CountActiveByPartner(ctx context.Context, partnerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}
func (m *MockPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}
func (m *MockPartnerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAreaRepository struct{ mock.Mock }

func (m *MockAreaRepository) Add(ctx context.Context, a *area.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*area.Area), args.Error(1)
}
func (m *MockAreaRepository) GetByName(_ context.Context, _ string) (*area.Area, error) {
	return nil, errors.New("not implemented in mock")
}

type MockChargeRuleRepository struct{ mock.Mock }

func (m *MockChargeRuleRepository) Upsert(ctx context.Context, rule *pricing.ChargeRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockChargeRuleRepository) Get(ctx context.Context, fromAreaID, toAreaID kernel.UUID) (*pricing.ChargeRule, error) {
	args := m.Called(ctx, fromAreaID, toAreaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.ChargeRule), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) CommissionRate(ctx context.Context) (pricing.CommissionRate, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.CommissionRate), args.Error(1)
}
func (m *MockSettingsRepository) SetCommissionRate(ctx context.Context, rate pricing.CommissionRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work shape the handlers declare, so each
// test wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}
func (m *MockUoW) AreaRepository() ports.AreaRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaRepository)
}
func (m *MockUoW) ChargeRuleRepository() ports.ChargeRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.ChargeRuleRepository)
}
func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockPartnerAreaUoWFactory struct{ mock.Mock }

func (m *MockPartnerAreaUoWFactory) Create() commands.PartnerAreaUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerAreaUoW)
}

type MockAreaUoWFactory struct{ mock.Mock }

func (m *MockAreaUoWFactory) Create() commands.AreaUoW {
	args := m.Called()
	return args.Get(0).(commands.AreaUoW)
}

type MockTariffUoWFactory struct{ mock.Mock }

func (m *MockTariffUoWFactory) Create() commands.TariffUoW {
	args := m.Called()
	return args.Get(0).(commands.TariffUoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}
