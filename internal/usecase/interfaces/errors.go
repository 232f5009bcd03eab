package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a unique constraint is violated.
var ErrDuplicateKey = errors.New("duplicate key")
