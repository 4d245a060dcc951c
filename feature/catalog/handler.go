package catalog

import (
	"library-manager/core/engine"
	"library-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleAdd)
	group.Delete("/:id", h.HandleDelete)
}

type addRequest struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	TotalCopies int    `json:"totalCopies"`
}

// HandleList returns all books after resyncing the mirror.
// @Summary List books
// @Description Lists all books. Every call refreshes the local mirror from the inventory engine.
// @Tags catalog
// @Produce json
// @Success 200 {array} engine.Book
// @Failure 500 {object} map[string]string "Engine or store fault"
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	books, err := h.service.List(c.Context())
	if err != nil {
		l.Error("List failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list books",
		})
	}

	return c.JSON(books)
}

// HandleAdd registers a new book.
// @Summary Add a book
// @Description Adds a book to the inventory engine and returns the updated collection.
// @Tags catalog
// @Accept json
// @Produce json
// @Param book body addRequest true "Book to add"
// @Success 200 {array} engine.Book
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 500 {object} map[string]string "Engine or store fault"
// @Router /items [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}

	if req.ID == 0 || req.Title == "" || req.Author == "" || req.Category == "" || req.TotalCopies < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing fields",
		})
	}

	books, err := h.service.Add(c.Context(), engine.Book{
		ID:          req.ID,
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		l.Error("Add failed", zap.Int("id", req.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to add book",
		})
	}

	return c.JSON(books)
}

// HandleDelete removes a book.
// @Summary Delete a book
// @Description Deletes a book from the inventory engine and returns the updated collection.
// @Tags catalog
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {array} engine.Book
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Engine or store fault"
// @Router /items/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid id",
		})
	}

	books, err := h.service.Delete(c.Context(), id)
	if err != nil {
		l.Error("Delete failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete book",
		})
	}

	return c.JSON(books)
}
