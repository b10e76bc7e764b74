package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGetTableColumnsSQLite(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY, contents TEXT, number INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "notes")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["contents"])
	assert.Equal(t, "integer", colMap["number"])

	// PRAGMA table_info returns an empty result for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumnsMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM `notes`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "INT UNSIGNED", "NO", "PRI", nil, "auto_increment").
			AddRow("contents", "VARCHAR(16)", "YES", "", nil, "").
			AddRow("number", "BIGINT", "YES", "", nil, ""),
	)

	columns, err := GetTableColumns(db, "notes")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Types are normalized to lowercase for comparison.
	assert.Equal(t, "int unsigned", columns[0].Type)
	assert.Equal(t, "varchar(16)", columns[1].Type)
	assert.Equal(t, "id", columns[0].Field)

	assert.NoError(t, mock.ExpectationsWereMet())
}
