package bulk

import (
	"reflect"

	"gorm.io/gorm"
)

// DestroyAllowed reports whether a bulk delete over filtered may proceed.
//
// Both queries are normalized by generating their SQL under a dry-run
// session with the ORDER BY clause discarded; ordering never narrows a
// result set. If the normalized statements are identical the caller applied
// no real filtering and deleting would wipe the whole collection, so the
// request is rejected. Any difference in the filtering predicate allows the
// delete, even when the filter still matches every current row: intent to
// filter was expressed.
func DestroyAllowed[T any](base, filtered *gorm.DB) bool {
	baseSQL, baseVars := normalizedSelect[T](base)
	filtSQL, filtVars := normalizedSelect[T](filtered)
	return baseSQL != filtSQL || !reflect.DeepEqual(baseVars, filtVars)
}

// normalizedSelect builds the SELECT the query would run, minus ordering.
// Passing the existing context into the session forces a statement clone,
// so dropping the ORDER BY clause never mutates the caller's query.
func normalizedSelect[T any](query *gorm.DB) (string, []any) {
	tx := query.Session(&gorm.Session{DryRun: true, Context: query.Statement.Context})
	delete(tx.Statement.Clauses, "ORDER BY")

	var records []T
	tx = tx.Find(&records)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}
