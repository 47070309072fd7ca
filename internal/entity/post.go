package entity

import "time"

type BlogPost struct {
	ID          uint          `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Excerpt     string        `json:"excerpt"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Status      ContentStatus `json:"status"`
	Views       int           `json:"views"`
	AuthorID    string        `json:"authorId"`
	PublishedAt *time.Time    `json:"publishedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PostChanges carries the fields of a partial update; nil means unchanged.
type PostChanges struct {
	Slug     *string
	Title    *string
	Content  *string
	Excerpt  *string
	Category *string
	Tags     *[]string
}

func (c PostChanges) Empty() bool {
	return c.Slug == nil && c.Title == nil && c.Content == nil &&
		c.Excerpt == nil && c.Category == nil && c.Tags == nil
}
