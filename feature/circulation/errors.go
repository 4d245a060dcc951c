package circulation

import "errors"

var (
	// ErrBookNotFound means the referenced book has no catalog row.
	ErrBookNotFound = errors.New("book not found")

	// ErrOutOfStock means the book has no available copies.
	ErrOutOfStock = errors.New("no copies available")

	// ErrNoOpenLoan means no open loan exists for the (book, borrower) pair.
	ErrNoOpenLoan = errors.New("no open loan for borrower")
)
