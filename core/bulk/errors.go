package bulk

import (
	"fmt"
)

// ErrorCode identifies a class of batch-scoped validation failure.
type ErrorCode string

const (
	// CodeMissingIdentifierField - an item lacks the configured identifier key.
	CodeMissingIdentifierField ErrorCode = "missing_identifier_field"
	// CodeDuplicateIdentifier - two or more items share an identifier value.
	CodeDuplicateIdentifier ErrorCode = "duplicate_identifier"
	// CodeInvalidIdentifier - an identifier value is null, empty, or not a scalar.
	CodeInvalidIdentifier ErrorCode = "invalid_identifier"
	// CodeUnresolvedIdentifiers - identifier values with no matching record.
	CodeUnresolvedIdentifiers ErrorCode = "unresolved_identifiers"
	// CodeSchemaValidation - field-level validation failed for one or more items.
	CodeSchemaValidation ErrorCode = "schema_validation_failed"
	// CodeUnsafeBulkDestroy - a bulk delete without any real filtering.
	CodeUnsafeBulkDestroy ErrorCode = "unsafe_bulk_destroy"
)

// BatchError is a client-facing validation failure covering a whole bulk
// request. It always aborts the batch; there is no partial application.
type BatchError struct {
	Code   ErrorCode `json:"code"`
	Field  string    `json:"field,omitempty"`
	Values []any     `json:"values,omitempty"`
	Detail string    `json:"detail"`
}

func (e *BatchError) Error() string {
	return e.Detail
}

// ErrMissingIdentifierField reports items lacking the identifier key.
func ErrMissingIdentifierField(field string) *BatchError {
	return &BatchError{
		Code:   CodeMissingIdentifierField,
		Field:  field,
		Detail: fmt.Sprintf("missing required field '%s' in one or more items", field),
	}
}

// ErrDuplicateIdentifier reports every identifier value submitted more than once.
func ErrDuplicateIdentifier(field string, values []any) *BatchError {
	return &BatchError{
		Code:   CodeDuplicateIdentifier,
		Field:  field,
		Values: values,
		Detail: fmt.Sprintf("duplicate %s values found in request: %v", field, values),
	}
}

// ErrInvalidIdentifier reports identifier values that cannot address a record.
func ErrInvalidIdentifier(field string, values []any) *BatchError {
	return &BatchError{
		Code:   CodeInvalidIdentifier,
		Field:  field,
		Values: values,
		Detail: fmt.Sprintf("invalid or missing %s values: %v", field, values),
	}
}

// ErrUnresolvedIdentifiers reports identifier values with no persisted record.
func ErrUnresolvedIdentifiers(field string, values []any) *BatchError {
	return &BatchError{
		Code:   CodeUnresolvedIdentifiers,
		Field:  field,
		Values: values,
		Detail: fmt.Sprintf("could not find records with %s values: %v", field, values),
	}
}

// ErrSchemaValidation wraps per-item field validation failures.
// Each value is an "index N: reason" string so the caller can locate the
// offending items in the submitted list.
func ErrSchemaValidation(items []any) *BatchError {
	return &BatchError{
		Code:   CodeSchemaValidation,
		Values: items,
		Detail: fmt.Sprintf("validation failed for %d item(s)", len(items)),
	}
}

// ErrUnsafeBulkDestroy rejects a delete that would cover the entire
// unfiltered collection.
func ErrUnsafeBulkDestroy() *BatchError {
	return &BatchError{
		Code:   CodeUnsafeBulkDestroy,
		Detail: "bulk destroy rejected: request applies no filtering to the collection",
	}
}
