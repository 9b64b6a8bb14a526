package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPlatformStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.GetPlatformStatsQueryHandler
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetPlatformStatsQueryHandler(db)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, partners").Error)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) seedPartner(name string) *partner.Partner {
	ctx := context.Background()
	seeded, err := partner.NewPartner(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	seeded.Approve()
	seeded.SetOnline(true)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, seeded))
	suite.Require().NoError(uow.Commit(ctx))
	return seeded
}

// seedOrder creates an order, optionally completes it for the given partner
// and rates it with the given score. A zero score leaves the order unrated.
func (suite *GetPlatformStatsQueryHandlerTestSuite) seedOrder(
	commission float64, completedBy *partner.Partner, score int,
) *order.Order {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	amount, err := kernel.NewMoney(50)
	suite.Require().NoError(err)
	fee, err := kernel.NewMoney(commission)
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), kernel.NewUUID(),
		"12 North Rd", "7 South Ave", amount, fee, time.Now().UTC())
	suite.Require().NoError(err)

	if completedBy != nil {
		suite.Require().NoError(seeded.Accept(completedBy.ID()))
		for _, transition := range []order.Transition{
			order.TransitionPickUp, order.TransitionArrive, order.TransitionComplete,
		} {
			suite.Require().NoError(seeded.Advance(completedBy.ID(), transition))
		}
		if score > 0 {
			suite.Require().NoError(seeded.Rate(customerID, score, ""))
		}
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, seeded))
	suite.Require().NoError(uow.Commit(ctx))
	return seeded
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestEmptyPlatform() {
	stats, err := suite.handler.Handle(context.Background(), queries.NewGetPlatformStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(0), stats.TotalOrders)
	suite.Equal(int64(0), stats.CompletedOrders)
	suite.InDelta(0.0, stats.CommissionEarned, 1e-9)
	suite.Empty(stats.PartnerRatings)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestAggregates() {
	first := suite.seedPartner("Avery Cole")
	second := suite.seedPartner("Sam Porter")

	suite.seedOrder(5, first, 4)
	suite.seedOrder(3, first, 2)
	suite.seedOrder(7, second, 0) // completed but never rated
	suite.seedOrder(9, nil, 0)    // still pending, commission not earned

	stats, err := suite.handler.Handle(context.Background(), queries.NewGetPlatformStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(4), stats.TotalOrders)
	suite.Equal(int64(3), stats.CompletedOrders)
	suite.InDelta(15.0, stats.CommissionEarned, 1e-9)

	suite.Require().Len(stats.PartnerRatings, 2)

	avery := stats.PartnerRatings[0]
	suite.Equal("Avery Cole", avery.Name)
	suite.True(avery.PartnerID.IsEqual(first.ID()))
	suite.Equal(int64(2), avery.RatedOrders)
	suite.InDelta(3.0, avery.AverageRating, 1e-9)

	sam := stats.PartnerRatings[1]
	suite.Equal("Sam Porter", sam.Name)
	suite.Equal(int64(0), sam.RatedOrders)
	suite.InDelta(0.0, sam.AverageRating, 1e-9)
}

func TestGetPlatformStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPlatformStatsQueryHandlerTestSuite))
}
