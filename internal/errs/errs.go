// Package errs defines the error shapes the API returns to its clients.
//
// Every failure that reaches a client is an *HTTPError serialized as
// {"code": "...", "message": "..."}. Codes are stable strings clients can
// switch on; messages are human readable and may carry the offending id.
package errs

// Service error codes. They are part of the public API and must not change.
const (
	// CodeData is returned when the store could not be reached or queried.
	CodeData = "000001"

	// CodeAuthorNotFound is returned when an author id has no matching row.
	CodeAuthorNotFound = "000002"

	// CodeSave is returned when a write affected no row or produced no id.
	CodeSave = "000003"

	// CodeNewsNotFound is returned when a news id has no matching row.
	CodeNewsNotFound = "000004"

	// CodeTagNotFound is returned when a tag id has no matching row.
	CodeTagNotFound = "000005"

	// CodeBadID is returned when an id is not a positive integer.
	CodeBadID = "0000010"

	// CodeBadJSON is returned when the request body cannot be decoded.
	CodeBadJSON = "0000011"

	// CodeValidation is returned when a decoded request breaks a field rule.
	CodeValidation = "0000012"
)

// Messages paired with the codes above.
const (
	MessageData           = "Error getting data from database."
	MessageAuthorNotFound = "Author Id does not exist. Author Id is: %d"
	MessageNewsNotFound   = "News Id does not exist. News Id is: %d"
	MessageTagNotFound    = "Tag Id does not exist. Tag Id is: %d"
	MessageBadID          = "Id must be a number and more than 0"
	MessageBadJSON        = "Problem with parsing JSON"
	MessageValidation     = "Validation failed"
)
