package entity

import "time"

const ConfigMaintenanceMode = "maintenance_mode"

type SiteConfig struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	UpdatedBy   string    `json:"updatedBy"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
