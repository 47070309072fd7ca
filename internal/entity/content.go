package entity

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPending   ContentStatus = "pending"
	StatusPublished ContentStatus = "published"
	StatusRejected  ContentStatus = "rejected"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}
