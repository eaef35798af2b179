package dto

// MessageDeleted is the body message of a successful delete.
const MessageDeleted = "Object was deleted successfully"

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewsResponse nests its author and tags. Author is null when the
// author was deleted after the news was created.
type NewsResponse struct {
	ID      int64           `json:"id"`
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Author  *AuthorResponse `json:"author"`
	Tags    []TagResponse   `json:"tags"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
