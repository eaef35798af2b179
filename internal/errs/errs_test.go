package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorsAreBadRequests(t *testing.T) {
	tests := []struct {
		err     *HTTPError
		code    string
		message string
	}{
		{NewDataError(), CodeData, MessageData},
		{NewSaveError("Creating tag failed, no Id obtained."), CodeSave, "Creating tag failed, no Id obtained."},
		{NewAuthorNotFoundError(7), CodeAuthorNotFound, "Author Id does not exist. Author Id is: 7"},
		{NewNewsNotFoundError(8), CodeNewsNotFound, "News Id does not exist. News Id is: 8"},
		{NewTagNotFoundError(9), CodeTagNotFound, "Tag Id does not exist. Tag Id is: 9"},
		{NewBadIDError(), CodeBadID, MessageBadID},
		{NewBadJSONError(), CodeBadJSON, MessageBadJSON},
	}

	for _, tt := range tests {
		assert.Equal(t, http.StatusBadRequest, tt.err.Status, tt.code)
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.message, tt.err.Message)
	}
}

func TestHTTPErrorJSON(t *testing.T) {
	body, err := json.Marshal(NewTagNotFoundError(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"000005","message":"Tag Id does not exist. Tag Id is: 3"}`, string(body))

	body, err = json.Marshal(NewValidationError([]FieldError{{Field: "name", Error: "is required"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"0000012","message":"Validation failed","errors":[{"field":"name","error":"is required"}]}`, string(body))
}

func TestHTTPErrorIs(t *testing.T) {
	err := fmt.Errorf("reading: %w", NewAuthorNotFoundError(1))

	assert.ErrorIs(t, err, &HTTPError{})
	assert.ErrorIs(t, err, &HTTPError{Code: CodeAuthorNotFound})
	assert.NotErrorIs(t, err, &HTTPError{Code: CodeTagNotFound})
	assert.NotErrorIs(t, errors.New("plain"), &HTTPError{})
}

func TestFrameworkErrors(t *testing.T) {
	notFound := NewNotFoundError("Route not found")
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, http.StatusNotFound, notFound.Status)

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, "Internal Server Error", internal.Message)

	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}
