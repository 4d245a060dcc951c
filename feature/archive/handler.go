package archive

import (
	"library-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Post("/backup", h.HandleBackup)
	group.Get("/backups", h.HandleListBackups)
}

// HandleBackup writes a backup of the catalog and ledger.
// @Summary Write a backup
// @Description Uploads the current catalog and loan ledger to object storage.
// @Tags archive
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string "Storage or store fault"
// @Router /archive/backup [post]
func (h *Handler) HandleBackup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.Backup(c.Context())
	if err != nil {
		l.Error("Backup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "backup failed",
		})
	}

	return c.JSON(fiber.Map{"objects": objects})
}

// HandleListBackups lists existing backup objects.
// @Summary List backups
// @Description Lists backup objects previously written to object storage.
// @Tags archive
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string "Storage fault"
// @Router /archive/backups [get]
func (h *Handler) HandleListBackups(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ListBackups(c.Context())
	if err != nil {
		l.Error("Backup listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list backups",
		})
	}

	return c.JSON(fiber.Map{"backups": names})
}
