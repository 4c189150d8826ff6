// Package storage defines where the content layer keeps snapshots of backend
// reads between restarts. Snapshots may be discarded at any time; the
// backend stays the source of truth.
package storage
