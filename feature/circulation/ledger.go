package circulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"library-manager/feature/circulation/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger is the append-mostly record of loans. It performs no existence or
// availability checks of its own; the Service does those before writing.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger on the given database.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// CreateIssue appends an open loan and returns its id.
func (l *Ledger) CreateIssue(ctx context.Context, bookID int, borrowerName, borrowerID string) (string, error) {
	loan := models.Loan{
		ID:           uuid.NewString(),
		BookID:       bookID,
		BorrowerName: borrowerName,
		BorrowerID:   borrowerID,
		IssuedAt:     time.Now(),
	}

	if err := l.db.WithContext(ctx).Create(&loan).Error; err != nil {
		return "", fmt.Errorf("failed to record loan: %w", err)
	}
	return loan.ID, nil
}

// FindOpenIssue returns the most recently issued open loan for the
// (book, borrower) pair, or nil when none exists.
func (l *Ledger) FindOpenIssue(ctx context.Context, bookID int, borrowerID string) (*models.Loan, error) {
	var loan models.Loan
	err := l.db.WithContext(ctx).
		Where("book_id = ? AND borrower_id = ? AND returned_at IS NULL", bookID, borrowerID).
		Order("issued_at DESC").
		First(&loan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find open loan: %w", err)
	}
	return &loan, nil
}

// CloseIssue marks an open loan returned. Closing is one-way; a loan that is
// already closed (or missing) yields ErrNoOpenLoan.
func (l *Ledger) CloseIssue(ctx context.Context, id string, returnedAt time.Time) error {
	res := l.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("id = ? AND returned_at IS NULL", id).
		Update("returned_at", returnedAt)
	if res.Error != nil {
		return fmt.Errorf("failed to close loan %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoOpenLoan
	}
	return nil
}

// ListAll returns every loan, most recently issued first.
func (l *Ledger) ListAll(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	if err := l.db.WithContext(ctx).Order("issued_at DESC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}
