package entity

import "time"

type Achievement struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type UserActivity struct {
	ID           uint                   `json:"id"`
	UserID       *string                `json:"userId"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resourceType"`
	ResourceID   string                 `json:"resourceId"`
	Metadata     map[string]interface{} `json:"metadata"`
	IPAddress    string                 `json:"ipAddress"`
	UserAgent    string                 `json:"userAgent"`
	CreatedAt    time.Time              `json:"createdAt"`
}
