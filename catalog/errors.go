package catalog

import "errors"

var (
	ErrNotFound         = errors.New("catalog: not found")
	ErrSnapshotNotFound = errors.New("catalog: snapshot not found")
	ErrInvalidQuery     = errors.New("catalog: invalid query")
)
