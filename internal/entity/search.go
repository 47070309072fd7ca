package entity

type SearchResultType string

const (
	SearchResultBlog SearchResultType = "blog"
	SearchResultTool SearchResultType = "tool"
)

type SearchResult struct {
	Type        SearchResultType `json:"type"`
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Tags        []string         `json:"tags"`
	URL         string           `json:"url"`
}
