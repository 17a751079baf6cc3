// Package report optionally persists one row per CLI run into an
// embedded SQLite database via GORM, alongside the mandatory CSV file
// (spec.md §6; the database is a domain-stack supplement, enabled only
// by passing --db to cmd/hdastar).
package report
