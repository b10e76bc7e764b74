package bulk_test

import (
	"errors"
	"testing"

	"bulk-manager/core/bulk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelSchema requires a non-empty "label" field on every item.
type labelSchema struct{}

func (labelSchema) Validate(mode bulk.ValidationMode, item bulk.Payload) error {
	if v, ok := item["label"].(string); !ok || v == "" {
		return errors.New("field 'label' is required")
	}
	return nil
}

func TestValidateAll(t *testing.T) {
	t.Run("AllValid", func(t *testing.T) {
		items := []bulk.Payload{
			{"label": "a"},
			{"label": "b"},
		}
		assert.NoError(t, bulk.ValidateAll(labelSchema{}, bulk.ModeCreate, items))
	})

	t.Run("CollectsEveryFailure", func(t *testing.T) {
		items := []bulk.Payload{
			{"label": "a"},
			{},
			{"label": ""},
		}
		err := bulk.ValidateAll(labelSchema{}, bulk.ModeCreate, items)
		var be *bulk.BatchError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, bulk.CodeSchemaValidation, be.Code)
		require.Len(t, be.Values, 2)
		assert.Contains(t, be.Values[0], "index 1")
		assert.Contains(t, be.Values[1], "index 2")
	})

	t.Run("EmptyList", func(t *testing.T) {
		assert.NoError(t, bulk.ValidateAll(labelSchema{}, bulk.ModeUpdate, nil))
	})
}
