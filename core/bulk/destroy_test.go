package bulk_test

import (
	"testing"

	"bulk-manager/core/bulk"
	"bulk-manager/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDestroyAllowed(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	base := func() *gorm.DB { return db.Model(&widget{}) }

	t.Run("NoFiltering", func(t *testing.T) {
		assert.False(t, bulk.DestroyAllowed[widget](base(), base()))
	})

	t.Run("OrderingOnly", func(t *testing.T) {
		// An override that only reorders must still be rejected.
		assert.False(t, bulk.DestroyAllowed[widget](base(), base().Order("count DESC")))
		assert.False(t, bulk.DestroyAllowed[widget](base(), base().Order("label ASC").Order("count DESC")))
	})

	t.Run("Filtered", func(t *testing.T) {
		assert.True(t, bulk.DestroyAllowed[widget](base(), base().Where("count >= ?", 10)))
	})

	t.Run("FilteredAndOrdered", func(t *testing.T) {
		filtered := base().Where("count >= ?", 10).Order("count DESC")
		assert.True(t, bulk.DestroyAllowed[widget](base(), filtered))
	})

	t.Run("FilterMatchingEveryRow", func(t *testing.T) {
		// Intent to filter was expressed; matching all current rows is fine.
		require.NoError(t, db.Create(&widget{Label: "w", Count: 5}).Error)
		assert.True(t, bulk.DestroyAllowed[widget](base(), base().Where("count >= ?", 0)))
	})

	t.Run("SameFilterDifferentBindValue", func(t *testing.T) {
		assert.True(t, bulk.DestroyAllowed[widget](
			base().Where("count >= ?", 1),
			base().Where("count >= ?", 2),
		))
	})

	t.Run("DoesNotMutateCaller", func(t *testing.T) {
		ordered := base().Order("count DESC")
		_ = bulk.DestroyAllowed[widget](base(), ordered)

		// The ordering clause must survive the dry-run normalization.
		var recs []widget
		tx := ordered.Session(&gorm.Session{DryRun: true}).Find(&recs)
		assert.Contains(t, tx.Statement.SQL.String(), "ORDER BY")
	})
}

// The predicate only compares generated SQL, so it must behave the same on
// the production dialector. sqlmock provides a connection that is never hit
// because dry-run statements are not executed.
func TestDestroyAllowedMySQLDialector(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	base := func() *gorm.DB { return db.Model(&widget{}) }

	assert.False(t, bulk.DestroyAllowed[widget](base(), base().Order("count DESC")))
	assert.True(t, bulk.DestroyAllowed[widget](base(), base().Where("count >= ?", 10)))
}
