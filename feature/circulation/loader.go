package circulation

import (
	"library-manager/core/engine"
	"library-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the circulation service and handler into the loader.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the circulation feature on the shared catalog store
// and ledger.
func NewFeature(client engine.Client, store *catalog.Store, ledger *Ledger, logger *zap.Logger) *Feature {
	svc := NewService(client, store, ledger, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "circulation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
