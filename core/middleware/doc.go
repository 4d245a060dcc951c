// Package middleware groups the HTTP middleware used by the server.
//
// # Subpackages
//
//   - rayid: assigns every request a unique ray id for log correlation.
//   - auth: optional API key protection for the whole API surface.
//
// Middleware order matters: rayid must run first so that every subsequent
// log line, including auth rejections, carries the ray id.
package middleware
