package archive

import (
	"library-manager/core/storage"
	"library-manager/feature/catalog"
	"library-manager/feature/circulation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the archive service and handler into the loader.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the archive feature.
func NewFeature(client storage.Client, bucket string, store *catalog.Store, ledger *circulation.Ledger, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, store, ledger, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
