package usecase

import "errors"

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidMediaKind   = errors.New("invalid media kind")
	ErrEmptyQuery         = errors.New("empty search query")
	ErrInvalidConfigValue = errors.New("invalid config value")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)
