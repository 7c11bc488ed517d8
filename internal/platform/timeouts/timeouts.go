// Package timeouts defines shared timeout constants used across the process.
// Centralizing these values keeps the HTTP server and the users API client in
// agreement about how long a single operator interaction may take.
package timeouts

import "time"

// APIRequest caps the time allowed for a single users API call that the
// admin screen issues on behalf of an operator.
const APIRequest = 5 * time.Second

// Introspect caps the time allowed for a token introspection call.
const Introspect = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
