package tariffrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/tariffrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ChargeRuleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tariffrepo.GormChargeRuleRepository
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&tariffrepo.ChargeRuleDTO{}))
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE charge_rules").Error)
	suite.repository = tariffrepo.NewGormChargeRuleRepository(suite.db)
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) mustRule(from, to kernel.UUID, amount float64) *pricing.ChargeRule {
	money, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	rule, err := pricing.NewChargeRule(from, to, money)
	suite.Require().NoError(err)
	return rule
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) TestUpsert_InsertThenOverwrite() {
	ctx := context.Background()
	from := kernel.NewUUID()
	to := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.mustRule(from, to, 50)))

	retrieved, err := suite.repository.Get(ctx, from, to)
	suite.Require().NoError(err)
	suite.InDelta(50.0, retrieved.Amount().Amount(), 1e-9)

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.mustRule(from, to, 75)))

	retrieved, err = suite.repository.Get(ctx, from, to)
	suite.Require().NoError(err)
	suite.InDelta(75.0, retrieved.Amount().Amount(), 1e-9)
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) TestGet_IsDirectional() {
	ctx := context.Background()
	from := kernel.NewUUID()
	to := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.mustRule(from, to, 50)))

	// the reverse direction has no rule
	_, err := suite.repository.Get(ctx, to, from)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ChargeRuleRepositoryIntegrationTestSuite) TestUpsert_SameAreaPair() {
	ctx := context.Background()
	areaID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.mustRule(areaID, areaID, 20)))

	retrieved, err := suite.repository.Get(ctx, areaID, areaID)
	suite.Require().NoError(err)
	suite.InDelta(20.0, retrieved.Amount().Amount(), 1e-9)
}

func TestChargeRuleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ChargeRuleRepositoryIntegrationTestSuite))
}
