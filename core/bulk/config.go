package bulk

// Config holds per-resource settings for bulk operations.
type Config struct {
	// IdentifierField is the payload field correlating an item with a
	// persisted record.
	IdentifierField string `mapstructure:"identifier_field" default:"id"`
	// UseTransactions wraps each bulk mutation in a database transaction.
	// Disabling it commits every write independently.
	UseTransactions bool `mapstructure:"use_transactions" default:"true"`
}
