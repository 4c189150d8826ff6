// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// BackendRequest caps a single read or write against the content backend
// when no explicit timeout is configured.
const BackendRequest = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
