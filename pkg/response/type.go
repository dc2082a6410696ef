package response

import "net/http"

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// HTTPError is an error that knows its HTTP status.
// Handlers map domain errors to HTTPError before calling Error.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// errorCode maps an HTTP status to the envelope error code.
func (e *HTTPError) errorCode() int {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrorCodeBadRequest
	default:
		return e.Status
	}
}
