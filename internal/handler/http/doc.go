// Package http implements the HTTP transport layer of the launch-gate
// service.
//
// It exposes route wiring, the launch-config and health handlers, and
// middleware for cross-cutting concerns: request tracing, access logging,
// per-client rate limiting and Prometheus instrumentation.
package http
