package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/arearepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newSqliteDB opens an in-memory database for read model tests. The query
// handlers scan through database/sql value types on purpose, so the fast
// in-memory engine and the real postgres store behave the same here.
func newSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// the in-memory database lives and dies with a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partnerrepo.PartnerDTO{},
		&arearepo.AreaDTO{},
	))
	return db
}

func insertOrderRow(t *testing.T, db *gorm.DB, row orderrepo.OrderDTO) orderrepo.OrderDTO {
	t.Helper()

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CustomerID == uuid.Nil {
		row.CustomerID = uuid.New()
	}
	if row.PickupAreaID == uuid.Nil {
		row.PickupAreaID = uuid.New()
	}
	if row.DropAreaID == uuid.Nil {
		row.DropAreaID = uuid.New()
	}
	if row.PickupAddress == "" {
		row.PickupAddress = "12 North Rd"
	}
	if row.DropAddress == "" {
		row.DropAddress = "7 South Ave"
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, db.Create(&row).Error)
	return row
}
