package catalog

import (
	"context"

	"library-manager/core/engine"

	"go.uber.org/zap"
)

// Service orchestrates engine calls and mirror updates for book management.
// Every operation follows the same shape: invoke the engine, install the
// returned snapshot, answer from the refreshed mirror. On engine failure
// nothing local changes.
type Service struct {
	engine engine.Client
	store  *Store
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(client engine.Client, store *Store, logger *zap.Logger) *Service {
	return &Service{
		engine: client,
		store:  store,
		logger: logger,
	}
}

// List resyncs the mirror from the engine and returns the collection.
// This is also how the mirror converges after a partially completed
// operation elsewhere.
func (s *Service) List(ctx context.Context) ([]engine.Book, error) {
	snapshot, err := s.engine.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.install(ctx, snapshot)
}

// Add registers a new book with the engine. The engine initializes
// Available to TotalCopies and echoes the full collection back.
func (s *Service) Add(ctx context.Context, b engine.Book) ([]engine.Book, error) {
	snapshot, err := s.engine.Add(ctx, b)
	if err != nil {
		return nil, err
	}
	return s.install(ctx, snapshot)
}

// Delete removes a book from the engine. Loan records referencing the book
// are left untouched; the issues view renders them with an unknown title.
func (s *Service) Delete(ctx context.Context, id int) ([]engine.Book, error) {
	snapshot, err := s.engine.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.install(ctx, snapshot)
}

// Store exposes the mirror for read-only collaborators (circulation, audit).
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) install(ctx context.Context, snapshot []engine.Book) ([]engine.Book, error) {
	if err := s.store.ReplaceSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	return s.store.ListAll(ctx)
}
