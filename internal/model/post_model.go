package model

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPostModel struct {
	ID          uint                        `gorm:"primaryKey"`
	Slug        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Content     string                      `gorm:"type:text;not null"`
	Excerpt     string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(100);not null;index"`
	Tags        datatypes.JSONSlice[string] `gorm:"not null"`
	Status      string                      `gorm:"type:varchar(20);not null;index"`
	Views       int                         `gorm:"not null;default:0"`
	AuthorID    string                      `gorm:"type:varchar(255);not null;index"`
	PublishedAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (BlogPostModel) TableName() string { return "blog_posts" }

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;index"`
	AuthorID  string `gorm:"type:varchar(255);not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string { return "comments" }
