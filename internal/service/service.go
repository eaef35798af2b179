// Package service contains the business logic.
//
// It sits between the handler and repository layers. Services call the
// repositories, convert models to response shapes and translate every
// repository failure into an *errs.HTTPError carrying a stable code.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/repository"
	"github.com/rs/zerolog"
)

// notFoundFunc builds the entity specific not-found error for an id.
type notFoundFunc func(id int64) *errs.HTTPError

// translate maps a repository error onto the service error vocabulary.
//
// Not-found errors take the entity's own code, save errors keep the
// repository message, and everything else becomes a data error whose
// cause is only logged.
func translate(ctx context.Context, err error, id int64, notFound notFoundFunc) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return notFound(id)
		case errors.Is(err, repository.ErrSave):
			logCause(ctx, repoErr.Cause(), "save failed")
			return errs.NewSaveError(repoErr.Message)
		}
	}

	cause := err
	if repoErr != nil && repoErr.Cause() != nil {
		cause = repoErr.Cause()
	}
	logCause(ctx, cause, "data access failed")

	return errs.NewDataError()
}

func logCause(ctx context.Context, cause error, msg string) {
	if cause == nil {
		return
	}
	zerolog.Ctx(ctx).Error().Err(cause).Msg(msg)
}
