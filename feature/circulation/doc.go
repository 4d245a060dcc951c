// Package circulation tracks who holds which book.
//
// It owns the loan ledger (table 'loans') and the issue/return protocol that
// keeps the ledger, the catalog mirror, and the external inventory engine in
// step. The protocol order is fixed: local precondition checks first, then
// exactly one engine call, then snapshot install, then the ledger write.
// Nothing local changes before the engine call succeeds, so an engine
// failure needs no rollback.
//
// Returns close the most recent open loan for the (book, borrower) pair.
// The engine tracks aggregate counts only, not per-copy identity, so a
// return names a book, never a specific physical copy.
//
// # HTTP Endpoints
//
//   - POST /items/:id/issue : issue a copy to a borrower.
//   - POST /items/:id/return : return a copy.
//   - GET /issues : the loan ledger joined with catalog titles.
package circulation
