package bulk

import (
	"fmt"
)

// ValidationMode tells a Schema which fields a payload must carry. The mode
// is always passed explicitly by the orchestrating code, never inferred
// from the request.
type ValidationMode int

const (
	// ModeCreate requires every field needed to construct a record.
	ModeCreate ValidationMode = iota
	// ModeUpdate requires every mutable field (full replacement).
	ModeUpdate
	// ModePartialUpdate accepts any subset of mutable fields.
	ModePartialUpdate
)

func (m ValidationMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	case ModePartialUpdate:
		return "partial_update"
	default:
		return "unknown"
	}
}

// Schema validates one payload item against a resource's field rules.
// Implementations live with the resource (see feature/notes).
type Schema interface {
	Validate(mode ValidationMode, item Payload) error
}

// ValidateAll validates every item of a bulk request collectively: all
// items are checked, all failures are gathered, and any failure rejects the
// whole batch before persistence. Failures are indexed by the item's
// position in the submitted list.
func ValidateAll(schema Schema, mode ValidationMode, items []Payload) error {
	var failures []any
	for i, item := range items {
		if err := schema.Validate(mode, item); err != nil {
			failures = append(failures, fmt.Sprintf("index %d: %s", i, err.Error()))
		}
	}
	if len(failures) > 0 {
		return ErrSchemaValidation(failures)
	}
	return nil
}
