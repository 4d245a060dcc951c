package models

import (
	"time"
)

// Loan represents a row of the 'loans' ledger table. A loan is open while
// ReturnedAt is NULL and closed once it is set; closing is one-way and loans
// are never deleted. BookID is a weak reference: deleting a book neither
// cascades to nor blocks its loans.
type Loan struct {
	ID           string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	BookID       int        `gorm:"column:book_id;index" json:"bookId"`
	BorrowerName string     `gorm:"column:borrower_name;size:100" json:"borrowerName"`
	BorrowerID   string     `gorm:"column:borrower_id;size:64;index" json:"borrowerId"`
	IssuedAt     time.Time  `gorm:"column:issued_at;index" json:"issuedAt"`
	ReturnedAt   *time.Time `gorm:"column:returned_at" json:"returnedAt,omitempty"`
}

// TableName overrides the GORM table name.
func (Loan) TableName() string {
	return "loans"
}

// Open reports whether the loan is still out.
func (l Loan) Open() bool {
	return l.ReturnedAt == nil
}
