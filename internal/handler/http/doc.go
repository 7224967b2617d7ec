// Package http implements the HTTP transport layer of the tender search
// server.
//
// It exposes route wiring, the search and version handlers, and the
// middleware used by the API. Cross-cutting concerns such as request tracing,
// access logging, panic recovery, metrics, response compression and request
// timeouts are handled in this package before requests are delegated to the
// service layer.
package http
