// Package requestid tags every request with a correlation id carried in the
// X-Request-ID header, the request context and log records.
package requestid
