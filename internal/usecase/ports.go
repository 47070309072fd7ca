package usecase

import "io"

// EventPublisher is satisfied by *queue.Client.
type EventPublisher interface {
	PublishEvent(routingKey string, event map[string]interface{}) error
}

// MediaUploader is satisfied by *s3.Client.
type MediaUploader interface {
	UploadFile(key string, body io.ReadSeeker, contentType string) (string, error)
}
