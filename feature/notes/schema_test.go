package notes_test

import (
	"testing"

	"bulk-manager/core/bulk"
	"bulk-manager/feature/notes"

	"github.com/stretchr/testify/assert"
)

func TestSchemaValidate(t *testing.T) {
	s := notes.NewSchema()

	t.Run("CreateRequiresAllFields", func(t *testing.T) {
		assert.NoError(t, s.Validate(bulk.ModeCreate, bulk.Payload{
			"contents": "hello", "number": float64(1),
		}))
		assert.Error(t, s.Validate(bulk.ModeCreate, bulk.Payload{
			"contents": "hello",
		}))
		assert.Error(t, s.Validate(bulk.ModeCreate, bulk.Payload{
			"number": float64(1),
		}))
	})

	t.Run("UpdateRequiresAllFields", func(t *testing.T) {
		assert.Error(t, s.Validate(bulk.ModeUpdate, bulk.Payload{
			"contents": "hello",
		}))
	})

	t.Run("PartialUpdateAcceptsSubsets", func(t *testing.T) {
		assert.NoError(t, s.Validate(bulk.ModePartialUpdate, bulk.Payload{
			"contents": "hello",
		}))
		assert.NoError(t, s.Validate(bulk.ModePartialUpdate, bulk.Payload{}))
	})

	t.Run("ContentsLengthLimit", func(t *testing.T) {
		assert.Error(t, s.Validate(bulk.ModeCreate, bulk.Payload{
			"contents": "longer than sixteen characters",
			"number":   float64(1),
		}))
	})

	t.Run("IdentifierIsIgnored", func(t *testing.T) {
		// Update payloads still carry the identifier at this point.
		assert.NoError(t, s.Validate(bulk.ModeUpdate, bulk.Payload{
			"id": float64(1), "contents": "hello", "number": float64(2),
		}))
	})

	t.Run("RejectsUndecodableField", func(t *testing.T) {
		assert.Error(t, s.Validate(bulk.ModeCreate, bulk.Payload{
			"contents": "ok", "number": "not a number",
		}))
	})
}

func TestSchemaMutableFields(t *testing.T) {
	s := notes.NewSchema()

	fields := s.MutableFields(bulk.Payload{
		"contents": "hello",
		"number":   float64(2),
		"bogus":    "dropped",
	})
	assert.Equal(t, map[string]any{
		"contents": "hello",
		"number":   float64(2),
	}, fields)
}
