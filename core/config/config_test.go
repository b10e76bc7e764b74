package config_test

import (
	"testing"

	"bulk-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "id", cfg.Bulk.IdentifierField)
	assert.True(t, cfg.Bulk.UseTransactions)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BULK_USE_TRANSACTIONS", "false")
	t.Setenv("BULK_IDENTIFIER_FIELD", "number")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Bulk.UseTransactions)
	assert.Equal(t, "number", cfg.Bulk.IdentifierField)
}
