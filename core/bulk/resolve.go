package bulk

import (
	"gorm.io/gorm"
)

// KeyFunc extracts the identifier value from a persisted record, e.g. the
// primary key of a GORM model.
type KeyFunc[T any] func(record T) any

// Match pairs a resolved persisted record with the payload to apply to it.
// The payload no longer carries the identifier field.
type Match[T any] struct {
	Record  T
	Payload Payload
}

// Resolve maps payload items to persisted records by identifierKey.
//
// It validates the identifier values up front (presence, duplicates,
// usability), performs exactly one bulk lookup against query, and returns
// one Match per item in the original payload order regardless of row
// retrieval order. Any failure rejects the whole batch with a *BatchError
// before a single write could have happened; the lookup itself is the only
// storage access.
func Resolve[T any](query *gorm.DB, identifierKey string, key KeyFunc[T], items []Payload) ([]Match[T], error) {
	if len(items) == 0 {
		return []Match[T]{}, nil
	}

	ids := make([]any, 0, len(items))
	for _, item := range items {
		v, ok := item[identifierKey]
		if !ok {
			return nil, ErrMissingIdentifierField(identifierKey)
		}
		ids = append(ids, v)
	}

	// Single-pass duplicate count, reported in first-seen order.
	seen := make(map[string]int, len(ids))
	var duplicates []any
	for _, id := range ids {
		k := canonicalKey(id)
		seen[k]++
		if seen[k] == 2 {
			duplicates = append(duplicates, id)
		}
	}
	if len(duplicates) > 0 {
		return nil, ErrDuplicateIdentifier(identifierKey, duplicates)
	}

	var invalid []any
	for _, id := range ids {
		if !usableIdentifier(id) {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return nil, ErrInvalidIdentifier(identifierKey, invalid)
	}

	// One bulk lookup for the whole batch, indexed by canonical key.
	var records []T
	if err := query.Where(map[string]any{identifierKey: ids}).Find(&records).Error; err != nil {
		return nil, err
	}
	byKey := make(map[string]T, len(records))
	for _, r := range records {
		byKey[canonicalKey(key(r))] = r
	}

	var missing []any
	for _, id := range ids {
		if _, ok := byKey[canonicalKey(id)]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, ErrUnresolvedIdentifiers(identifierKey, missing)
	}

	matches := make([]Match[T], 0, len(items))
	for i, item := range items {
		matches = append(matches, Match[T]{
			Record:  byKey[canonicalKey(ids[i])],
			Payload: item.WithoutField(identifierKey),
		})
	}
	return matches, nil
}
