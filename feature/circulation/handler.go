package circulation

import (
	"errors"

	"library-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for circulation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the circulation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/items/:id/issue", h.HandleIssue)
	app.Post("/items/:id/return", h.HandleReturn)
	app.Get("/issues", h.HandleListIssues)
}

type issueRequest struct {
	BorrowerName string `json:"borrowerName"`
	BorrowerID   string `json:"borrowerId"`
}

type returnRequest struct {
	BorrowerID string `json:"borrowerId"`
}

// HandleIssue issues one copy of a book to a borrower.
// @Summary Issue a book
// @Description Issues a copy to a borrower and records the loan.
// @Tags circulation
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param borrower body issueRequest true "Borrower"
// @Success 200 {array} engine.Book
// @Failure 400 {object} map[string]string "Missing fields or out of stock"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Engine or store fault"
// @Router /items/{id}/issue [post]
func (h *Handler) HandleIssue(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid id",
		})
	}

	var req issueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}
	if req.BorrowerName == "" || req.BorrowerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing fields",
		})
	}

	books, err := h.service.IssueBook(c.Context(), id, req.BorrowerName, req.BorrowerID)
	switch {
	case errors.Is(err, ErrBookNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": ErrBookNotFound.Error(),
		})
	case errors.Is(err, ErrOutOfStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrOutOfStock.Error(),
		})
	case err != nil:
		l.Error("Issue failed", zap.Int("book_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue book",
		})
	}

	return c.JSON(books)
}

// HandleReturn takes a book back from a borrower.
// @Summary Return a book
// @Description Closes the borrower's most recent open loan for the book.
// @Tags circulation
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param borrower body returnRequest true "Borrower"
// @Success 200 {array} engine.Book
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 404 {object} map[string]string "No open loan"
// @Failure 500 {object} map[string]string "Engine or store fault"
// @Router /items/{id}/return [post]
func (h *Handler) HandleReturn(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid id",
		})
	}

	var req returnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}
	if req.BorrowerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing fields",
		})
	}

	books, err := h.service.ReturnBook(c.Context(), id, req.BorrowerID)
	switch {
	case errors.Is(err, ErrNoOpenLoan):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": ErrNoOpenLoan.Error(),
		})
	case err != nil:
		l.Error("Return failed", zap.Int("book_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to return book",
		})
	}

	return c.JSON(books)
}

// HandleListIssues returns the loan ledger joined with catalog titles.
// @Summary List issues
// @Description Lists every loan with its book title, most recent first.
// @Tags circulation
// @Produce json
// @Success 200 {array} IssueRow
// @Failure 500 {object} map[string]string "Store fault"
// @Router /issues [get]
func (h *Handler) HandleListIssues(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.ListIssues(c.Context())
	if err != nil {
		l.Error("Issues view failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list issues",
		})
	}

	return c.JSON(rows)
}
