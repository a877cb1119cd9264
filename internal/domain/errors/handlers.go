package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`              // Business error code, e.g., "ADDRESS_NOT_FOUND"
	Details string            `json:"details,omitempty"` // Detailed error information (optional)
	Fields  map[string]string `json:"fields,omitempty"`  // Per-field validation messages (optional)
}

// FieldError is implemented by errors that carry per-field messages
type FieldError interface {
	AppError
	FieldMessages() map[string]string
}
