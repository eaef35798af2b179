package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "title").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type every handler returns to the client.
//
// It implements the `error` interface via Error() and is serialized
// directly as the response body. Status never reaches the body; it only
// selects the HTTP status line.
//   - Code: stable service code (e.g. "000002").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, omitted when empty.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError carrying the same code.
//
// A target with an empty code matches any *HTTPError, so
// errors.Is(err, &HTTPError{}) answers "is this a client-facing error".
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return t.Code == "" || t.Code == e.Code
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Too Many Requests" -> "TOO_MANY_REQUESTS"
//
// Used to build codes for errors raised by the framework itself
// (unknown route, rate limit), which have no service code.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
