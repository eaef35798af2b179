package dto

import "github.com/deppfellow/newsroom/internal/model"

func ToAuthorResponse(a model.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name}
}

func ToAuthorResponses(authors []model.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAuthorResponse(a))
	}
	return out
}

func ToTagResponse(t model.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}

func ToTagResponses(tags []model.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, ToTagResponse(t))
	}
	return out
}

func ToNewsResponse(n model.News) NewsResponse {
	resp := NewsResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    ToTagResponses(n.Tags),
	}
	if n.Author != nil {
		author := ToAuthorResponse(*n.Author)
		resp.Author = &author
	}
	return resp
}

func ToNewsResponses(news []model.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(news))
	for _, n := range news {
		out = append(out, ToNewsResponse(n))
	}
	return out
}

func (r CreateAuthorRequest) ToModel() model.Author {
	return model.Author{Name: r.Name}
}

func (r UpdateAuthorRequest) ToModel() model.Author {
	return model.Author{ID: r.ID, Name: r.Name}
}

func (r CreateTagRequest) ToModel() model.Tag {
	return model.Tag{Name: r.Name}
}

func (r UpdateTagRequest) ToModel() model.Tag {
	return model.Tag{ID: r.ID, Name: r.Name}
}

// ToModel keeps the tag names in request order.
func (r CreateNewsRequest) ToModel() model.News {
	tags := make([]model.Tag, 0, len(r.Tags))
	for _, name := range r.Tags {
		tags = append(tags, model.Tag{Name: name})
	}

	return model.News{
		Title:   r.Title,
		Content: r.Content,
		Author:  &model.Author{Name: r.Author},
		Tags:    tags,
	}
}

func (r UpdateNewsRequest) ToModel() model.News {
	return model.News{
		ID:      r.ID(),
		Title:   r.Title,
		Content: r.Content,
		Author:  &model.Author{Name: r.Author},
	}
}
