package models

import (
	"library-manager/core/engine"
)

// CatalogBook represents a row of the 'catalog_books' mirror table.
// Position preserves the engine-returned order so reloads stay stable.
type CatalogBook struct {
	BookID      int    `gorm:"column:book_id;primaryKey"`
	Title       string `gorm:"column:title;size:100"`
	Author      string `gorm:"column:author;size:100"`
	Category    string `gorm:"column:category;size:50"`
	TotalCopies int    `gorm:"column:total_copies"`
	Available   int    `gorm:"column:available"`
	Position    int    `gorm:"column:position"`
}

// TableName overrides the GORM table name.
func (CatalogBook) TableName() string {
	return "catalog_books"
}

// Book converts the row back to the wire type.
func (b CatalogBook) Book() engine.Book {
	return engine.Book{
		ID:          b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		TotalCopies: b.TotalCopies,
		Available:   b.Available,
	}
}

// FromSnapshot converts an engine snapshot into mirror rows, assigning
// positions in snapshot order.
func FromSnapshot(books []engine.Book) []CatalogBook {
	rows := make([]CatalogBook, 0, len(books))
	for i, b := range books {
		rows = append(rows, CatalogBook{
			BookID:      b.ID,
			Title:       b.Title,
			Author:      b.Author,
			Category:    b.Category,
			TotalCopies: b.TotalCopies,
			Available:   b.Available,
			Position:    i,
		})
	}
	return rows
}

// ToBooks converts mirror rows (already ordered) to the wire type.
func ToBooks(rows []CatalogBook) []engine.Book {
	books := make([]engine.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.Book())
	}
	return books
}
