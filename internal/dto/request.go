// Package dto defines the JSON request and response shapes of the API
// and the conversions between them and the persistence models.
package dto

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Empty is the request of endpoints that take no input.
type Empty struct{}

func (Empty) Validate() error {
	return nil
}

// IDParam reads a positive id from the ":id" path segment.
//
// The raw segment is bound as a string so a malformed id is reported
// as a bad id rather than as a decoding failure.
type IDParam struct {
	RawID string `param:"id" json:"-"`

	id int64
}

func (p *IDParam) Validate() error {
	id, err := strconv.ParseInt(p.RawID, 10, 64)
	if err != nil || id <= 0 {
		return errs.NewBadIDError()
	}
	p.id = id
	return nil
}

// ID returns the id parsed by Validate.
func (p *IDParam) ID() int64 {
	return p.id
}

type CreateAuthorRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateAuthorRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAuthorRequest carries the id in the body, not in the path.
type UpdateAuthorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

func (r *UpdateAuthorRequest) Validate() error {
	if r.ID <= 0 {
		return errs.NewBadIDError()
	}
	return validate.Struct(r)
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateTagRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTagRequest carries the id in the body, not in the path.
type UpdateTagRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

func (r *UpdateTagRequest) Validate() error {
	if r.ID <= 0 {
		return errs.NewBadIDError()
	}
	return validate.Struct(r)
}

// CreateNewsRequest names its author and tags; both are found or
// created by name when the news is stored.
type CreateNewsRequest struct {
	Title   string   `json:"title" validate:"required,max=100"`
	Content string   `json:"content" validate:"required,max=100"`
	Author  string   `json:"author" validate:"required,max=100"`
	Tags    []string `json:"tags" validate:"omitempty,dive,required,max=100"`
}

func (r *CreateNewsRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateNewsRequest takes the id from the path. Tags cannot be changed.
type UpdateNewsRequest struct {
	IDParam

	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=100"`
	Author  string `json:"author" validate:"required,max=100"`
}

func (r *UpdateNewsRequest) Validate() error {
	if err := r.IDParam.Validate(); err != nil {
		return err
	}
	return validate.Struct(r)
}
