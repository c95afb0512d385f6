// Package http implements the HTTP transport of the configuration service.
//
// It wires the chi router, the read-only handlers for server status, module
// listings, rendered module documents and raw resources, and the middleware
// chain (panic recovery, request tracing, access logging, response
// compression) that runs before requests reach the service layer.
package http
