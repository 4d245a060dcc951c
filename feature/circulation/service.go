package circulation

import (
	"context"
	"time"

	"library-manager/core/engine"
	"library-manager/feature/catalog"

	"go.uber.org/zap"
)

// UnknownTitle is rendered in the issues view for loans whose book was
// deleted after issuance.
const UnknownTitle = "Unknown"

// IssueRow is one row of the issues view: a loan joined with its book title.
type IssueRow struct {
	ItemID       int       `json:"itemId"`
	ItemTitle    string    `json:"itemTitle"`
	BorrowerName string    `json:"borrowerName"`
	BorrowerID   string    `json:"borrowerId"`
	IssuedAt     time.Time `json:"issuedAt"`
}

// Service runs the issue/return protocol against the engine, the catalog
// mirror, and the loan ledger.
//
// Both operations hold the per-book lock from the first precondition check
// through the ledger write, and neither honors cancellation once the engine
// call is issued: a partially completed operation (engine mutated, mirror
// not yet refreshed) converges on the next catalog list.
type Service struct {
	engine  engine.Client
	catalog *catalog.Store
	ledger  *Ledger
	logger  *zap.Logger
	locks   *bookLocks
}

// NewService creates a new circulation service.
func NewService(client engine.Client, store *catalog.Store, ledger *Ledger, logger *zap.Logger) *Service {
	return &Service{
		engine:  client,
		catalog: store,
		ledger:  ledger,
		logger:  logger,
		locks:   newBookLocks(),
	}
}

// IssueBook hands one copy of a book to a borrower.
//
// Preconditions run against the mirror before the engine is touched, so a
// missing book or exhausted stock leaves no side effects anywhere. Only
// after the engine confirms the decrement does the mirror refresh and the
// ledger gain its open loan.
func (s *Service) IssueBook(ctx context.Context, bookID int, borrowerName, borrowerID string) ([]engine.Book, error) {
	unlock := s.locks.Acquire(bookID)
	defer unlock()

	book, err := s.catalog.Lookup(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.Available <= 0 {
		return nil, ErrOutOfStock
	}

	snapshot, err := s.engine.Issue(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.ReplaceSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	loanID, err := s.ledger.CreateIssue(ctx, bookID, borrowerName, borrowerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Book issued",
		zap.Int("book_id", bookID),
		zap.String("borrower_id", borrowerID),
		zap.String("loan_id", loanID),
	)

	return s.catalog.ListAll(ctx)
}

// ReturnBook takes one copy of a book back from a borrower.
//
// The borrower's most recent open loan for the book is the one closed; with
// several open loans for the same pair (already an inconsistent state) the
// latest issue wins. No engine call happens when there is nothing to close.
func (s *Service) ReturnBook(ctx context.Context, bookID int, borrowerID string) ([]engine.Book, error) {
	unlock := s.locks.Acquire(bookID)
	defer unlock()

	loan, err := s.ledger.FindOpenIssue(ctx, bookID, borrowerID)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, ErrNoOpenLoan
	}

	snapshot, err := s.engine.Return(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.ReplaceSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := s.ledger.CloseIssue(ctx, loan.ID, time.Now()); err != nil {
		return nil, err
	}

	s.logger.Info("Book returned",
		zap.Int("book_id", bookID),
		zap.String("borrower_id", borrowerID),
		zap.String("loan_id", loan.ID),
	)

	return s.catalog.ListAll(ctx)
}

// ListIssues returns the full ledger joined with catalog titles, most
// recently issued first. Books deleted after issuance render as Unknown
// instead of failing the view.
func (s *Service) ListIssues(ctx context.Context) ([]IssueRow, error) {
	loans, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(loans))
	ids := make([]int, 0, len(loans))
	for _, loan := range loans {
		if _, ok := seen[loan.BookID]; ok {
			continue
		}
		seen[loan.BookID] = struct{}{}
		ids = append(ids, loan.BookID)
	}

	books, err := s.catalog.LookupMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]IssueRow, 0, len(loans))
	for _, loan := range loans {
		title := UnknownTitle
		if b, ok := books[loan.BookID]; ok {
			title = b.Title
		}
		rows = append(rows, IssueRow{
			ItemID:       loan.BookID,
			ItemTitle:    title,
			BorrowerName: loan.BorrowerName,
			BorrowerID:   loan.BorrowerID,
			IssuedAt:     loan.IssuedAt,
		})
	}
	return rows, nil
}
