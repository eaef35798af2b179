// Package sqlerr classifies PostgreSQL driver errors.
//
// It parses SQLSTATE codes from the driver into a small set of
// categories and turns them into client-facing errors (e.g. a
// "unique violation" on authors.name becomes a save error that
// names the author) without leaking driver detail.
package sqlerr

import (
	"fmt"
	"strings"
)

// Code is the category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	StringTooLong       Code = "string_data_right_truncation"
	ConnectionFailure   Code = "connection_exception"
	QueryCanceled       Code = "query_canceled"
	UndefinedTable      Code = "undefined_table"
)

// Severity is the severity reported by the server for an error.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapCode maps a SQLSTATE to a Code.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22001":
		return StringTooLong
	case "57014":
		return QueryCanceled
	case "42P01":
		return UndefinedTable
	}

	// Class 08 covers every connection exception.
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionFailure
	}

	return Other
}

// MapSeverity maps the severity string sent by the server to a Severity.
// Unknown values are reported as SeverityError.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}

// Error is a classified PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
