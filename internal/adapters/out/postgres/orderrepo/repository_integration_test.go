package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	amount, err := kernel.NewMoney(50)
	suite.Require().NoError(err)
	commission, err := kernel.NewMoney(5)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 North Rd", "7 South Ave", amount, commission,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.PartnerID())
	suite.Nil(retrieved.Rating())
	suite.InDelta(50.0, retrieved.Amount().Amount(), 1e-9)
	suite.InDelta(5.0, retrieved.Commission().Amount(), 1e-9)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AcceptPersistsAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	partnerID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept(partnerID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Require().NotNil(retrieved.PartnerID())
	suite.True(retrieved.PartnerID().IsEqual(partnerID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeclineClearsAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	partnerID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Accept(partnerID))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Advance(partnerID, order.TransitionDecline))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.PartnerID(), "decline must persist the cleared assignment")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RatingRoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	partnerID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Accept(partnerID))
	suite.Require().NoError(testOrder.Advance(partnerID, order.TransitionPickUp))
	suite.Require().NoError(testOrder.Advance(partnerID, order.TransitionArrive))
	suite.Require().NoError(testOrder.Advance(partnerID, order.TransitionComplete))
	suite.Require().NoError(testOrder.Rate(testOrder.CustomerID(), 4, "quick"))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Rating())
	suite.Equal(4, retrieved.Rating().Score())
	suite.Equal("quick", retrieved.Rating().Comment())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByPartner() {
	ctx := context.Background()
	partnerID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	// one active order, one completed, one pending unassigned
	active := suite.createTestOrder()
	suite.Require().NoError(active.Accept(partnerID))
	suite.Require().NoError(suite.repository.Add(ctx, active))

	completed := suite.createTestOrder()
	suite.Require().NoError(completed.Accept(partnerID))
	suite.Require().NoError(completed.Advance(partnerID, order.TransitionPickUp))
	suite.Require().NoError(completed.Advance(partnerID, order.TransitionArrive))
	suite.Require().NoError(completed.Advance(partnerID, order.TransitionComplete))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	pending := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	count, err := suite.repository.CountActiveByPartner(ctx, partnerID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	otherCount, err := suite.repository.CountActiveByPartner(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), otherCount)

	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
