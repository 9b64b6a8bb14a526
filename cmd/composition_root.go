package cmd

import (
	"log/slog"
	"os"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	return commands.NewRegisterPartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateApprovePartnerCommandHandler() commands.ApprovePartnerCommandHandler {
	return commands.NewApprovePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateRemovePartnerCommandHandler() commands.RemovePartnerCommandHandler {
	return commands.NewRemovePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateSetPartnerOnlineCommandHandler() commands.SetPartnerOnlineCommandHandler {
	return commands.NewSetPartnerOnlineCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateSetPartnerAreaCommandHandler() commands.SetPartnerAreaCommandHandler {
	var f commands.PartnerAreaUoWFactory = FuncPartnerAreaUoWFactory(func() commands.PartnerAreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAreaCommandHandler() commands.CreateAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAreaChargeCommandHandler() commands.SetAreaChargeCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAreaChargeCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCommissionRateCommandHandler() commands.SetCommissionRateCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCommissionRateCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerBoardQueryHandler() queries.GetPartnerBoardQueryHandler {
	return queries.NewGetPartnerBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAreasQueryHandler() queries.GetAreasQueryHandler {
	return queries.NewGetAreasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlatformStatsQueryHandler() queries.GetPlatformStatsQueryHandler {
	return queries.NewGetPlatformStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPlatformStatsQueryHandler(), c.logger)
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncPartnerAreaUoWFactory func() commands.PartnerAreaUoW

func (f FuncPartnerAreaUoWFactory) Create() commands.PartnerAreaUoW {
	return f()
}

type FuncAreaUoWFactory func() commands.AreaUoW

func (f FuncAreaUoWFactory) Create() commands.AreaUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
