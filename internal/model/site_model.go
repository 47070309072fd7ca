package model

import (
	"time"

	"gorm.io/datatypes"
)

type SiteConfigModel struct {
	Key         string `gorm:"type:varchar(255);primaryKey"`
	Value       string `gorm:"type:text;not null"`
	UpdatedBy   string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	UpdatedAt   time.Time
}

func (SiteConfigModel) TableName() string { return "site_config" }

type AchievementModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      string    `gorm:"type:varchar(255);not null;index"`
	Type        string    `gorm:"type:varchar(100);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Points      int       `gorm:"not null;default:0"`
	UnlockedAt  time.Time `gorm:"autoCreateTime"`
}

func (AchievementModel) TableName() string { return "achievements" }

type UserActivityModel struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       *string `gorm:"type:varchar(255);index"`
	Action       string  `gorm:"type:varchar(100);not null"`
	ResourceType string  `gorm:"type:varchar(100)"`
	ResourceID   string  `gorm:"type:varchar(2048)"`
	Metadata     datatypes.JSONMap
	IPAddress    string    `gorm:"type:varchar(64)"`
	UserAgent    string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
}

func (UserActivityModel) TableName() string { return "user_activity" }

type SeoMetricModel struct {
	URL         string                      `gorm:"type:varchar(2048);primaryKey"`
	Title       string                      `gorm:"type:varchar(255)"`
	Description string                      `gorm:"type:text"`
	Keywords    datatypes.JSONSlice[string] `gorm:"not null"`
	Views       int                         `gorm:"not null;default:0"`
	LastCrawled *time.Time
}

func (SeoMetricModel) TableName() string { return "seo_metrics" }
