// Package engine provides the client for the external inventory engine.
//
// The engine is an opaque CLI process that owns the authoritative book
// collection. Every invocation performs at most one mutation and prints the
// complete resulting collection as a JSON array on stdout. The caller treats
// that array as a full snapshot and never merges it with prior state.
//
// # Invocation Contract
//
//   - list
//   - add <id> <title> <author> <category> <totalCopies>
//   - delete <id>
//   - issue <id>
//   - return <id>
//
// Arguments must not contain whitespace; EscapeArg substitutes whitespace
// runs with underscores before invocation (a caller-side responsibility).
// Empty stdout is a valid synonym for an empty collection. A non-zero exit,
// or stdout that does not decode as a JSON array of books, is a failure and
// the caller must not adopt any part of the output.
//
// # Concurrency
//
// The engine provides no serialization of its own: each invocation loads and
// rewrites a shared data file, so interleaved mutating invocations lose
// updates. Request-level serialization is the caller's job (see the
// circulation service).
package engine
