package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string `gorm:"type:varchar(255);primaryKey"`
	Username        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email           string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	ProfileImageURL string `gorm:"type:varchar(500)"`
	Role            string `gorm:"type:varchar(20);not null;default:'user'"`
	Points          int    `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}
