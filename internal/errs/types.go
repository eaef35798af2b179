package errs

import (
	"fmt"
	"net/http"
)

// NewServiceError creates a 400 HTTPError with the given service code.
//
// Every failure of a service operation surfaces as 400 regardless of its
// category; the code tells clients what actually went wrong.
func NewServiceError(code, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewDataError reports that the store could not be reached or queried.
// The cause never appears in the message.
func NewDataError() *HTTPError {
	return NewServiceError(CodeData, MessageData)
}

// NewSaveError reports a write that affected no row or produced no id.
func NewSaveError(message string) *HTTPError {
	return NewServiceError(CodeSave, message)
}

func NewAuthorNotFoundError(id int64) *HTTPError {
	return NewServiceError(CodeAuthorNotFound, fmt.Sprintf(MessageAuthorNotFound, id))
}

func NewNewsNotFoundError(id int64) *HTTPError {
	return NewServiceError(CodeNewsNotFound, fmt.Sprintf(MessageNewsNotFound, id))
}

func NewTagNotFoundError(id int64) *HTTPError {
	return NewServiceError(CodeTagNotFound, fmt.Sprintf(MessageTagNotFound, id))
}

// NewBadIDError reports an id that is not a positive integer.
func NewBadIDError() *HTTPError {
	return NewServiceError(CodeBadID, MessageBadID)
}

// NewBadJSONError reports a request body that could not be decoded.
func NewBadJSONError() *HTTPError {
	return NewServiceError(CodeBadJSON, MessageBadJSON)
}

// NewValidationError reports field rule violations on a decoded request.
func NewValidationError(fieldErrors []FieldError) *HTTPError {
	e := NewServiceError(CodeValidation, MessageValidation)
	e.Errors = fieldErrors
	return e
}

// NewNotFoundError creates a 404 HTTPError.
//
// Only used for requests that match no route; missing entities are
// reported through their service codes instead.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
