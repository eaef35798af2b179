// Package model holds the persistence models shared by the repository
// and service layers. Field tags name the columns rows are scanned from.
package model

// Author writes news. Names are unique.
type Author struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Tag labels news. Names are unique.
type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// News is a published item.
//
// Author is nil only when the author was deleted after the news was
// created. Tags keep the order they were attached in.
type News struct {
	ID      int64
	Title   string
	Content string
	Author  *Author
	Tags    []Tag
}
