package domain

import "errors"

// Domain errors
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrUnknownProvider  = errors.New("unknown import provider")
)
