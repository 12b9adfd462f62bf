// Package requestid correlates log records, spans and profiler entries of one
// request through the X-Request-ID header.
package requestid
