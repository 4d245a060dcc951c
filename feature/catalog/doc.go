// Package catalog maintains the local mirror of the inventory engine's book
// collection and exposes the book management endpoints.
//
// The mirror is never edited in place: every engine call returns the full
// collection and the Store installs it wholesale, replacing whatever was
// there before. This keeps the mirror a faithful copy of the engine's last
// response and sidesteps partial-update bugs, at the cost of rewriting the
// table on every operation. Downstream consumers (the circulation service
// and the issues view) assume this full-mirror property.
//
// # HTTP Endpoints
//
//   - GET /items : list all books (also resyncs the mirror from the engine).
//   - POST /items : add a book.
//   - DELETE /items/:id : delete a book.
package catalog
