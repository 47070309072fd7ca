package model

import (
	"time"

	"gorm.io/datatypes"
)

type MediaItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type GithubToolModel struct {
	ID          uint                           `gorm:"primaryKey"`
	Slug        string                         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string                         `gorm:"type:varchar(255);not null"`
	Description string                         `gorm:"type:text;not null"`
	Category    string                         `gorm:"type:varchar(100);not null;index"`
	Difficulty  string                         `gorm:"type:varchar(20);not null"`
	Tags        datatypes.JSONSlice[string]    `gorm:"not null"`
	Screenshots datatypes.JSONSlice[MediaItem] `gorm:"not null"`
	Videos      datatypes.JSONSlice[MediaItem] `gorm:"not null"`
	Gifs        datatypes.JSONSlice[MediaItem] `gorm:"not null"`
	GithubURL   string                         `gorm:"column:github_url;type:varchar(500);not null"`
	OfficialURL string                         `gorm:"column:official_url;type:varchar(500)"`
	Stars       int                            `gorm:"not null;default:0"`
	Views       int                            `gorm:"not null;default:0"`
	AuthorID    string                         `gorm:"type:varchar(255);not null;index"`
	Status      string                         `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time                      `gorm:"index"`
	UpdatedAt   time.Time
}

func (GithubToolModel) TableName() string { return "github_tools" }
