package model

// Scope carries request-scoped identity through use cases. It is filled by
// delivery-layer middleware, never by use cases themselves.
type Scope struct {
	RequestID string
	ClientIP  string
}
