// Package context holds the request-scoped values shared between middleware,
// handlers and use cases: the request ID, the scoped logger and the
// authenticated vendor.
package context

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyVendorID is the key for the authenticated vendor ID.
	KeyVendorID ContextKey = "vendor_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)
