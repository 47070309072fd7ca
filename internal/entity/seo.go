package entity

import "time"

type SeoMetric struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	Views       int        `json:"views"`
	LastCrawled *time.Time `json:"lastCrawled"`
}
