package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/newsroom/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueConstraintColumn = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the category of err.
//
// Both already converted *Error values and raw *pgconn.PgError values
// found anywhere in the chain are recognised; anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}

	return Other
}

// ConvertPgError converts a raw server error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// formatUserFriendlyMessage produces a client-facing message for a
// constraint violation. It is never used for logs.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced by the column name when the constraint
		// name lets us infer it.
		return fmt.Sprintf("%s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringTooLong:
		return "One or more values are too long"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from table/column data.
//
//  1. A column ending with "_id" names the entity ("author_id" -> "Author").
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "Record"
}

// humanizeText converts snake_case into Title Case ("news_tags" -> "News Tags").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column name from a unique
// constraint name. Two conventions are understood:
//
//  1. "unique_<table>_<column>"         unique_tags_name -> "name"
//  2. "<table>_<column>_(key|ukey)"     authors_name_key -> "name"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintColumn.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// IsConstraintViolation reports whether err carries a server error caused
// by the data written rather than by the store itself.
func IsConstraintViolation(err error) bool {
	switch ErrCode(err) {
	case UniqueViolation, NotNullViolation, ForeignKeyViolation, CheckViolation, StringTooLong:
		return true
	}
	return false
}

// UserMessage returns the client-facing message for the server error in
// err's chain, e.g. "Author with this Name already exists" for a unique
// violation of authors_name_key. ok is false when err carries none.
func UserMessage(err error) (message string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return userMessage(ConvertPgError(pgErr)), true
}

func userMessage(sqlErr *Error) string {
	message := formatUserFriendlyMessage(sqlErr)
	if sqlErr.Code == UniqueViolation {
		if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
			message = strings.ReplaceAll(message, "identifier", humanizeText(columnName))
		}
	}
	return message
}

// HandleError converts a low-level database error into a client-facing error.
//
//   - *errs.HTTPError: returned unchanged
//   - constraint violations: a save error naming the entity
//   - any other server, connection or no-rows error: the generic data error
//   - everything else: a 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)

		switch sqlErr.Code {
		case NotNullViolation:
			saveErr := errs.NewSaveError(userMessage(sqlErr))
			saveErr.Errors = []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return saveErr

		case UniqueViolation, ForeignKeyViolation, CheckViolation, StringTooLong:
			return errs.NewSaveError(userMessage(sqlErr))

		default:
			return errs.NewDataError()
		}
	}

	var connErr *pgconn.ConnectError
	switch {
	case errors.As(err, &connErr),
		errors.Is(err, pgx.ErrNoRows),
		errors.Is(err, context.DeadlineExceeded):
		return errs.NewDataError()
	}

	return errs.NewInternalServerError()
}
