package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	corsMaxAge = 12 * time.Hour
)
