package notes

import (
	"bulk-manager/core/bulk"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	db      *gorm.DB
}

// NewFeature creates the notes feature.
func NewFeature(logger *zap.Logger, db *gorm.DB, cfg bulk.Config) *Feature {
	svc := NewService(logger, db, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, db: db}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "notes"
}

// IsEnabled checks if the feature is enabled. The resource is persistence
// backed, so it requires a database connection.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
