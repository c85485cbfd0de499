// Package http implements the session validator's HTTP transport.
//
// It wires the chi router, the validate and version handlers, the Prometheus
// endpoint and the middleware chain (trace id, access log, gzip, timeout,
// panic recovery) in front of the service layer.
package http
