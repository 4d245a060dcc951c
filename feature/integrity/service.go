package integrity

import (
	"context"
	"fmt"
	"time"

	catalogmodels "library-manager/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report contains the results of a consistency audit.
type Report struct {
	CatalogBooks     int      `json:"catalog_books"`
	OpenLoans        int      `json:"open_loans"`
	BoundsViolations []string `json:"bounds_violations"`
	Overbooked       []string `json:"overbooked"`
	OrphanedLoans    []string `json:"orphaned_loans"`
	GeneratedAt      string   `json:"generated_at"`
	ExecutionTime    string   `json:"execution_time"`
}

// Clean reports whether the audit found nothing wrong.
func (r *Report) Clean() bool {
	return len(r.BoundsViolations) == 0 && len(r.Overbooked) == 0 && len(r.OrphanedLoans) == 0
}

// Service runs read-only consistency checks across the mirror and ledger.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// openLoanCount is one row of the open-loans-per-book aggregation.
type openLoanCount struct {
	BookID int
	Count  int
}

// Audit runs all checks and returns the combined report.
func (s *Service) Audit(ctx context.Context) (*Report, error) {
	start := time.Now()

	var books []catalogmodels.CatalogBook
	if err := s.db.WithContext(ctx).Order("position").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var counts []openLoanCount
	err := s.db.WithContext(ctx).
		Raw("SELECT book_id, COUNT(*) AS count FROM loans WHERE returned_at IS NULL GROUP BY book_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count open loans: %w", err)
	}

	open := make(map[int]int, len(counts))
	totalOpen := 0
	for _, c := range counts {
		open[c.BookID] = c.Count
		totalOpen += c.Count
	}

	report := &Report{
		CatalogBooks:     len(books),
		OpenLoans:        totalOpen,
		BoundsViolations: []string{},
		Overbooked:       []string{},
		OrphanedLoans:    []string{},
	}

	mirrored := make(map[int]struct{}, len(books))
	for _, b := range books {
		mirrored[b.BookID] = struct{}{}

		if b.Available < 0 || b.Available > b.TotalCopies {
			report.BoundsViolations = append(report.BoundsViolations,
				fmt.Sprintf("book %d (%s): available %d outside [0, %d]", b.BookID, b.Title, b.Available, b.TotalCopies))
		}

		// Open loans should account for exactly the missing copies.
		// More open loans than missing copies means the ledger and the
		// engine disagree about how many copies are out.
		if n := open[b.BookID]; n > b.TotalCopies-b.Available {
			report.Overbooked = append(report.Overbooked,
				fmt.Sprintf("book %d (%s): %d open loans but only %d copies out", b.BookID, b.Title, n, b.TotalCopies-b.Available))
		}
	}

	for _, c := range counts {
		if _, ok := mirrored[c.BookID]; !ok {
			report.OrphanedLoans = append(report.OrphanedLoans,
				fmt.Sprintf("book %d: %d open loans but no catalog row", c.BookID, c.Count))
		}
	}

	report.GeneratedAt = start.UTC().Format(time.RFC3339)
	report.ExecutionTime = time.Since(start).String()

	if !report.Clean() {
		s.logger.Warn("Consistency audit found faults",
			zap.Int("bounds", len(report.BoundsViolations)),
			zap.Int("overbooked", len(report.Overbooked)),
			zap.Int("orphaned", len(report.OrphanedLoans)),
		)
	}

	return report, nil
}
