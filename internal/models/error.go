package models

// Messages returned to API clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgValidationErrors   = "validation errors"
)

// NotFoundError is the body returned with a 404
type NotFoundError struct {
	Error string `json:"error"`
}

// ValidationErrors is the body returned when a write is rejected. Every
// rejection reason collapses to the same generic message.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// APIError represents a generic error response for unexpected failures
type APIError struct {
	Error string `json:"error"`
}

// NewNotFoundError creates a not found body with the given message
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{Error: message}
}

// NewValidationErrors creates the uniform validation failure body
func NewValidationErrors() ValidationErrors {
	return ValidationErrors{Errors: []string{MsgValidationErrors}}
}

// NewAPIError creates a new API error with the given message
func NewAPIError(message string) APIError {
	return APIError{Error: message}
}
