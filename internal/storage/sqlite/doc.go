// Package sqlite keeps content snapshots in a local SQLite file.
package sqlite
