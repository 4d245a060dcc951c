// Package integrity provides the catalog/ledger consistency audit.
//
// The mirror and the ledger are updated by separate, non-atomic steps, so
// they can drift: a crash between the engine call and the ledger write, or
// operations issued directly against the engine binary, leave the two views
// disagreeing. The audit detects that drift; it never repairs anything.
//
// # Checks Provided
//
//   - Bounds: every mirrored book satisfies 0 <= available <= totalCopies.
//   - Overbooking: per book, open loans must not exceed totalCopies - available.
//   - Orphans: open loans referencing a book with no catalog row.
//
// # HTTP Endpoints
//
//   - GET /integrity : runs all checks and returns the report.
package integrity
