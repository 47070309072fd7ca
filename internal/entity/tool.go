package entity

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type MediaKind string

const (
	MediaScreenshot MediaKind = "screenshot"
	MediaVideo      MediaKind = "video"
	MediaGif        MediaKind = "gif"
)

func (k MediaKind) Valid() bool {
	switch k {
	case MediaScreenshot, MediaVideo, MediaGif:
		return true
	}
	return false
}

type MediaItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type GithubTool struct {
	ID          uint          `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Difficulty  Difficulty    `json:"difficulty"`
	Tags        []string      `json:"tags"`
	Screenshots []MediaItem   `json:"screenshots"`
	Videos      []MediaItem   `json:"videos"`
	Gifs        []MediaItem   `json:"gifs"`
	GithubURL   string        `json:"githubUrl"`
	OfficialURL string        `json:"officialUrl"`
	Stars       int           `json:"stars"`
	Views       int           `json:"views"`
	AuthorID    string        `json:"authorId"`
	Status      ContentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ToolChanges struct {
	Slug        *string
	Name        *string
	Description *string
	Category    *string
	Difficulty  *Difficulty
	Tags        *[]string
	Screenshots *[]MediaItem
	Videos      *[]MediaItem
	Gifs        *[]MediaItem
	GithubURL   *string
	OfficialURL *string
	Stars       *int
}
