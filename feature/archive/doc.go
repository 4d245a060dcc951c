// Package archive writes point-in-time backups of the catalog mirror and the
// loan ledger to object storage.
//
// A backup is two JSON objects under a shared timestamp prefix:
//
//	backups/<timestamp>/catalog.json
//	backups/<timestamp>/loans.json
//
// Backups read the same stores the reconciliation protocol writes, so they
// capture whatever the mirror held at that moment; they are an operational
// safety net, not part of the consistency protocol.
//
// # HTTP Endpoints
//
//   - POST /archive/backup : write a backup, reply with the object names.
//   - GET /archive/backups : list existing backup objects.
package archive
