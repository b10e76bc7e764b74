package notes

import (
	"fmt"

	"bulk-manager/core/bulk"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// noteInput is the decoded form of one payload item. Pointer fields
// distinguish "absent" from "zero" so partial updates can omit fields.
type noteInput struct {
	Contents *string `mapstructure:"contents" validate:"omitempty,max=16"`
	Number   *int    `mapstructure:"number"`
}

// mutableColumns are the payload fields that may be written to a record.
// The identifier only correlates and is stripped before apply.
var mutableColumns = map[string]struct{}{
	"contents": {},
	"number":   {},
}

// Schema validates note payloads. It implements bulk.Schema.
type Schema struct {
	validate *validator.Validate
}

// NewSchema creates the note schema with its field rules.
func NewSchema() *Schema {
	return &Schema{validate: validator.New()}
}

// Validate checks one payload item for the given mode. Create and full
// update require every mutable field; partial update accepts any subset.
func (s *Schema) Validate(mode bulk.ValidationMode, item bulk.Payload) error {
	in, err := decodeInput(item)
	if err != nil {
		return err
	}

	if mode == bulk.ModeCreate || mode == bulk.ModeUpdate {
		if in.Contents == nil {
			return fmt.Errorf("field 'contents' is required for %s", mode)
		}
		if in.Number == nil {
			return fmt.Errorf("field 'number' is required for %s", mode)
		}
	}

	return s.validate.Struct(in)
}

// MutableFields projects a payload onto the writable columns, dropping
// the identifier and anything the schema does not know.
func (s *Schema) MutableFields(item bulk.Payload) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		if _, ok := mutableColumns[k]; ok {
			out[k] = v
		}
	}
	return out
}

// decodeInput decodes a payload map into the typed input. Weak typing
// mirrors the coercion the framework's field types perform (JSON numbers
// arrive as float64, "3" is an acceptable integer).
func decodeInput(item bulk.Payload) (*noteInput, error) {
	var in noteInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &in,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(map[string]any(item)); err != nil {
		return nil, err
	}
	return &in, nil
}
