// Package backend defines the data client contract shared by every content
// read and write: a declarative Query, the Client interface that executes it,
// and the error values callers branch on.
//
// Implementations live in subpackages: postgrest talks to a hosted REST
// endpoint, sqlite serves the same shapes from a local database, and
// instrument decorates either one with tracing and metrics.
package backend
