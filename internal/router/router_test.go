package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/newsroom/internal/config"
	"github.com/deppfellow/newsroom/internal/dto"
	"github.com/deppfellow/newsroom/internal/errs"
	"github.com/deppfellow/newsroom/internal/handler"
	"github.com/deppfellow/newsroom/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthors serves a fixed author table and records what it was asked.
type stubAuthors struct {
	authors   map[int64]string
	lastInput any
}

func (s *stubAuthors) ReadAll(context.Context) ([]dto.AuthorResponse, error) {
	out := []dto.AuthorResponse{}
	for id := int64(1); id <= int64(len(s.authors)); id++ {
		out = append(out, dto.AuthorResponse{ID: id, Name: s.authors[id]})
	}
	return out, nil
}

func (s *stubAuthors) ReadByID(_ context.Context, id int64) (*dto.AuthorResponse, error) {
	name, ok := s.authors[id]
	if !ok {
		return nil, errs.NewAuthorNotFoundError(id)
	}
	return &dto.AuthorResponse{ID: id, Name: name}, nil
}

func (s *stubAuthors) Create(_ context.Context, req *dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	s.lastInput = *req
	id := int64(len(s.authors) + 1)
	s.authors[id] = req.Name
	return &dto.AuthorResponse{ID: id, Name: req.Name}, nil
}

func (s *stubAuthors) Update(_ context.Context, req *dto.UpdateAuthorRequest) (*dto.AuthorResponse, error) {
	s.lastInput = *req
	if _, ok := s.authors[req.ID]; !ok {
		return nil, errs.NewAuthorNotFoundError(req.ID)
	}
	s.authors[req.ID] = req.Name
	return &dto.AuthorResponse{ID: req.ID, Name: req.Name}, nil
}

func (s *stubAuthors) DeleteByID(_ context.Context, id int64) (*dto.MessageResponse, error) {
	if _, ok := s.authors[id]; !ok {
		return nil, errs.NewAuthorNotFoundError(id)
	}
	delete(s.authors, id)
	return &dto.MessageResponse{Message: dto.MessageDeleted}, nil
}

type stubTags struct{}

func (stubTags) ReadAll(context.Context) ([]dto.TagResponse, error) {
	return []dto.TagResponse{}, nil
}

func (stubTags) ReadByID(_ context.Context, id int64) (*dto.TagResponse, error) {
	return nil, errs.NewTagNotFoundError(id)
}

func (stubTags) Create(_ context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	return &dto.TagResponse{ID: 1, Name: req.Name}, nil
}

func (stubTags) Update(context.Context, *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	return nil, errs.NewSaveError("Tag with this Name already exists")
}

func (stubTags) DeleteByID(context.Context, int64) (*dto.MessageResponse, error) {
	return nil, errs.NewDataError()
}

type stubNews struct {
	lastUpdate *dto.UpdateNewsRequest
}

func (*stubNews) ReadAll(context.Context) ([]dto.NewsResponse, error) {
	return []dto.NewsResponse{}, nil
}

func (*stubNews) ReadByID(_ context.Context, id int64) (*dto.NewsResponse, error) {
	return &dto.NewsResponse{ID: id, Title: "t", Content: "c", Tags: []dto.TagResponse{}}, nil
}

func (*stubNews) Create(_ context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	tags := make([]dto.TagResponse, 0, len(req.Tags))
	for i, name := range req.Tags {
		tags = append(tags, dto.TagResponse{ID: int64(i + 1), Name: name})
	}
	return &dto.NewsResponse{
		ID:      7,
		Title:   req.Title,
		Content: req.Content,
		Author:  &dto.AuthorResponse{ID: 1, Name: req.Author},
		Tags:    tags,
	}, nil
}

func (s *stubNews) Update(_ context.Context, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	s.lastUpdate = req
	return &dto.NewsResponse{ID: req.ID(), Title: req.Title, Content: req.Content, Tags: []dto.TagResponse{}}, nil
}

func (*stubNews) DeleteByID(context.Context, int64) (*dto.MessageResponse, error) {
	return &dto.MessageResponse{Message: dto.MessageDeleted}, nil
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	authors *stubAuthors
	news    *stubNews
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	authors := &stubAuthors{authors: map[int64]string{1: "Egor Semenov"}}
	news := &stubNews{}

	h := &handler.Handlers{
		Health:  handler.NewHealthHandler(s),
		OpenAPI: handler.NewOpenAPIHandler(s),
		Author:  handler.NewAuthorHandler(s, authors),
		Tag:     handler.NewTagHandler(s, stubTags{}),
		News:    handler.NewNewsHandler(s, news),
	}

	return &testAPI{t: t, handler: NewRouter(s, h), authors: authors, news: news}
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthorRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/authors", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Egor Semenov"}]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = api.do(http.MethodPost, "/authors", `{"name":"Anna"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":2,"name":"Anna"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/authors/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"name":"Anna"}`, rec.Body.String())

	rec = api.do(http.MethodPut, "/authors", `{"id":2,"name":"Anna Ivanova"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.UpdateAuthorRequest{ID: 2, Name: "Anna Ivanova"}, api.authors.lastInput)

	rec = api.do(http.MethodDelete, "/authors/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Object was deleted successfully"}`, rec.Body.String())
}

func TestAuthorRoutes_Errors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		code    string
		message string
	}{
		{"missing author", http.MethodGet, "/authors/9", "", errs.CodeAuthorNotFound, "Author Id does not exist. Author Id is: 9"},
		{"non numeric id", http.MethodGet, "/authors/abc", "", errs.CodeBadID, errs.MessageBadID},
		{"zero id", http.MethodDelete, "/authors/0", "", errs.CodeBadID, errs.MessageBadID},
		{"zero id in body", http.MethodPut, "/authors", `{"id":0,"name":"x"}`, errs.CodeBadID, errs.MessageBadID},
		{"malformed json", http.MethodPost, "/authors", `{"name":`, errs.CodeBadJSON, errs.MessageBadJSON},
		{"empty name", http.MethodPost, "/authors", `{"name":""}`, errs.CodeValidation, errs.MessageValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/news", `{"title":"","content":"c","author":"a"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"code":"0000012","message":"Validation failed","errors":[{"field":"title","error":"is required"}]}`,
		rec.Body.String())
}

func TestServiceErrorsAreBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPut, "/tags", `{"id":3,"name":"MUSIC"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"000003","message":"Tag with this Name already exists"}`, rec.Body.String())

	rec = api.do(http.MethodDelete, "/tags/3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":"000001","message":"Error getting data from database."}`, rec.Body.String())
}

func TestNewsRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/news", `{"title":"Increase of ruble","content":"...","author":"Egor Semenov","tags":["FINANCE"]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": 7,
		"title": "Increase of ruble",
		"content": "...",
		"author": {"id": 1, "name": "Egor Semenov"},
		"tags": [{"id": 1, "name": "FINANCE"}]
	}`, rec.Body.String())

	rec = api.do(http.MethodPut, "/news/7", `{"title":"t2","content":"c2","author":"Anna"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, api.news.lastUpdate)
	assert.Equal(t, int64(7), api.news.lastUpdate.ID())
	assert.Equal(t, "Anna", api.news.lastUpdate.Author)

	rec = api.do(http.MethodPut, "/news/x", `{"title":"t2","content":"c2","author":"Anna"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeBadID, decodeError(t, rec).Code)

	rec = api.do(http.MethodGet, "/news/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"t","content":"c","author":null,"tags":[]}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Route not found", body.Message)
}

func TestStatusWithoutDatabase(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/status", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}
