package entity

import "errors"

// ErrNotFound is returned by repositories when the requested row is absent.
var ErrNotFound = errors.New("record not found")
