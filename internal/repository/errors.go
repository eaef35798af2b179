package repository

import (
	"errors"
	"fmt"

	"github.com/deppfellow/newsroom/internal/sqlerr"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrData means the store could not be reached or queried.
	ErrData = errors.New("data error")

	// ErrNotFound means a row required to exist is missing.
	ErrNotFound = errors.New("not found")

	// ErrSave means a write affected no row or returned no generated id.
	ErrSave = errors.New("save error")
)

const messageData = "Error load data"

// Error is returned by every repository operation.
//
// Message is safe to show to clients. The driver error, if any, is kept
// for errors.Is/As and logging but never appears in Message.
type Error struct {
	Kind    error
	Message string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

// Cause returns the driver error behind e, or nil.
func (e *Error) Cause() error {
	return e.cause
}

func dataError(cause error) error {
	return &Error{Kind: ErrData, Message: messageData, cause: cause}
}

func notFoundError(label string, id int64) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s Id does not exist. Id is: %d", label, id)}
}

func saveError(message string, cause error) error {
	return &Error{Kind: ErrSave, Message: message, cause: cause}
}

// writeError classifies a failed insert or update. A constraint
// violation is a save error described by sqlerr ("Author with this Name
// already exists"); anything else is a data error.
func writeError(cause error) error {
	if sqlerr.IsConstraintViolation(cause) {
		message, _ := sqlerr.UserMessage(cause)
		return saveError(message, cause)
	}
	return dataError(cause)
}
