package integrity

import (
	"library-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the consistency audit.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/integrity", h.HandleAudit)
}

// HandleAudit runs the consistency audit and returns the report.
// @Summary Consistency audit
// @Description Checks the catalog mirror and loan ledger for drift. Read-only.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report
// @Failure 500 {object} map[string]string "Store fault"
// @Router /integrity [get]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Audit(c.Context())
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "audit failed",
		})
	}

	return c.JSON(report)
}
