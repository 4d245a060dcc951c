package catalog

import (
	"context"
	"errors"
	"fmt"

	"library-manager/core/engine"
	"library-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// Store is the local mirror of the engine's book collection.
// It is written only through ReplaceSnapshot; there is no row-level mutation.
type Store struct {
	db *gorm.DB
}

// NewStore creates a mirror store on the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ReplaceSnapshot atomically discards the mirror content and installs the
// given snapshot. An empty snapshot clears the mirror. Replaying the same
// snapshot is idempotent.
func (s *Store) ReplaceSnapshot(ctx context.Context, books []engine.Book) error {
	rows := models.FromSnapshot(books)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CatalogBook{})
		if del.Error != nil {
			return del.Error
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace catalog snapshot: %w", err)
	}
	return nil
}

// Lookup returns the mirrored book with the given id, or nil when absent.
func (s *Store) Lookup(ctx context.Context, id int) (*engine.Book, error) {
	var row models.CatalogBook
	err := s.db.WithContext(ctx).First(&row, "book_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up book %d: %w", id, err)
	}

	b := row.Book()
	return &b, nil
}

// LookupMany returns the mirrored books for the given ids, keyed by id.
// Ids without a row are simply missing from the result.
func (s *Store) LookupMany(ctx context.Context, ids []int) (map[int]engine.Book, error) {
	found := make(map[int]engine.Book, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var rows []models.CatalogBook
	if err := s.db.WithContext(ctx).Where("book_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up books: %w", err)
	}

	for _, r := range rows {
		found[r.BookID] = r.Book()
	}
	return found, nil
}

// ListAll returns the mirror content in engine-returned order.
func (s *Store) ListAll(ctx context.Context) ([]engine.Book, error) {
	var rows []models.CatalogBook
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return models.ToBooks(rows), nil
}
