package bulk

import (
	"gorm.io/gorm"
)

// Atomically runs work inside a database transaction when useTx is set:
// every write commits together or the whole batch rolls back on error.
// When unset, work runs directly against db and each statement commits on
// its own, so a mid-batch failure leaves earlier writes in place.
func Atomically(db *gorm.DB, useTx bool, work func(tx *gorm.DB) error) error {
	if useTx {
		return db.Transaction(work)
	}
	return work(db)
}
