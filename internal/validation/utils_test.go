package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newContext(http.MethodPost, "/authors", `{"name":"Egor"}`)
		var req dto.CreateAuthorRequest

		require.NoError(t, validation.BindAndValidate(c, &req))
		assert.Equal(t, "Egor", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := newContext(http.MethodPost, "/authors", `{"name":`)
		var req dto.CreateAuthorRequest

		err := validation.BindAndValidate(c, &req)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, errs.CodeBadJSON, httpErr.Code)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("wrong type", func(t *testing.T) {
		c := newContext(http.MethodPut, "/authors", `{"id":"one","name":"Egor"}`)
		var req dto.UpdateAuthorRequest

		assert.ErrorIs(t, validation.BindAndValidate(c, &req), errs.NewBadJSONError())
	})

	t.Run("bad id passes through", func(t *testing.T) {
		c := newContext(http.MethodPut, "/authors", `{"id":0,"name":"Egor"}`)
		var req dto.UpdateAuthorRequest

		assert.ErrorIs(t, validation.BindAndValidate(c, &req), errs.NewBadIDError())
	})

	t.Run("field errors", func(t *testing.T) {
		c := newContext(http.MethodPost, "/news", `{"title":"","content":"c","author":"a","tags":["MUSIC",""]}`)
		var req dto.CreateNewsRequest

		err := validation.BindAndValidate(c, &req)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, errs.CodeValidation, httpErr.Code)
		assert.Equal(t, []errs.FieldError{
			{Field: "title", Error: "is required"},
			{Field: "tags[1]", Error: "is required"},
		}, httpErr.Errors)
	})
}

type brokenRequest struct{}

func (brokenRequest) Validate() error {
	return errors.New("boom")
}

func TestValidate_UnknownError(t *testing.T) {
	err := validation.Validate(brokenRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeValidation, httpErr.Code)
	assert.Empty(t, httpErr.Errors)
}
