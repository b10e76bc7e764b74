package notes

import (
	"bulk-manager/core/bulk"
	"bulk-manager/feature/notes/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates bulk mutations on the notes resource. Validation
// and target resolution complete before any write; writes run inside the
// optional transaction scope.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
	schema *Schema
	cfg    bulk.Config
}

// NewService creates a new notes service.
func NewService(logger *zap.Logger, db *gorm.DB, cfg bulk.Config) *Service {
	if cfg.IdentifierField == "" {
		cfg.IdentifierField = "id"
	}
	return &Service{
		logger: logger,
		db:     db,
		schema: NewSchema(),
		cfg:    cfg,
	}
}

// Collection returns the unfiltered base query for the resource.
func (s *Service) Collection() *gorm.DB {
	return s.db.Model(&models.Note{})
}

// List returns the records matched by the given query.
func (s *Service) List(query *gorm.DB) ([]models.Note, error) {
	recs := []models.Note{}
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Create validates and persists a single record.
func (s *Service) Create(item bulk.Payload) (*models.Note, error) {
	if err := bulk.ValidateAll(s.schema, bulk.ModeCreate, []bulk.Payload{item}); err != nil {
		return nil, err
	}
	rec := s.buildNote(item)
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// BulkCreate validates the whole list collectively, then persists every
// item inside the optional transaction scope. Results come back in
// request order.
func (s *Service) BulkCreate(items []bulk.Payload) ([]models.Note, error) {
	if err := bulk.ValidateAll(s.schema, bulk.ModeCreate, items); err != nil {
		return nil, err
	}

	recs := make([]models.Note, 0, len(items))
	err := bulk.Atomically(s.db, s.cfg.UseTransactions, func(tx *gorm.DB) error {
		for _, item := range items {
			rec := s.buildNote(item)
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bulk create applied", zap.Int("count", len(recs)))
	return recs, nil
}

// BulkUpdate resolves every payload item against the target collection by
// the configured identifier field and applies the remaining fields per
// record. Results come back in payload order.
func (s *Service) BulkUpdate(target *gorm.DB, items []bulk.Payload, partial bool) ([]models.Note, error) {
	mode := bulk.ModeUpdate
	if partial {
		mode = bulk.ModePartialUpdate
	}
	if err := bulk.ValidateAll(s.schema, mode, items); err != nil {
		return nil, err
	}

	matches, err := bulk.Resolve(target, s.cfg.IdentifierField, s.identifierOf, items)
	if err != nil {
		return nil, err
	}

	recs := make([]models.Note, 0, len(matches))
	err = bulk.Atomically(s.db, s.cfg.UseTransactions, func(tx *gorm.DB) error {
		for _, m := range matches {
			rec := m.Record
			fields := s.schema.MutableFields(m.Payload)
			if len(fields) > 0 {
				if err := tx.Model(&rec).Updates(fields).Error; err != nil {
					return err
				}
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bulk update applied", zap.Int("count", len(recs)))
	return recs, nil
}

// BulkDestroy deletes every record in the filtered collection after the
// safety predicate confirms real filtering was applied. Returns the number
// of records deleted, or bulk.ErrUnsafeBulkDestroy without touching storage.
func (s *Service) BulkDestroy(base, filtered *gorm.DB) (int64, error) {
	if !bulk.DestroyAllowed[models.Note](base, filtered) {
		return 0, bulk.ErrUnsafeBulkDestroy()
	}

	var recs []models.Note
	if err := filtered.Find(&recs).Error; err != nil {
		return 0, err
	}

	err := bulk.Atomically(s.db, s.cfg.UseTransactions, func(tx *gorm.DB) error {
		for i := range recs {
			if err := tx.Delete(&recs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Bulk destroy applied", zap.Int("count", len(recs)))
	return int64(len(recs)), nil
}

// identifierOf extracts the configured identifier field from a record.
func (s *Service) identifierOf(rec models.Note) any {
	switch s.cfg.IdentifierField {
	case "number":
		return rec.Number
	case "contents":
		return rec.Contents
	default:
		return rec.ID
	}
}

// buildNote constructs a record from a validated payload. Unknown fields
// were already dropped by the schema projection.
func (s *Service) buildNote(item bulk.Payload) models.Note {
	var rec models.Note
	in, err := decodeInput(item)
	if err != nil {
		// Validation ran first; a decode failure here is unreachable.
		return rec
	}
	if in.Contents != nil {
		rec.Contents = *in.Contents
	}
	if in.Number != nil {
		rec.Number = *in.Number
	}
	return rec
}
