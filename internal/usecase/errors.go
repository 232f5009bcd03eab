package usecase

import "errors"

// ErrForbidden is returned when the caller neither owns the resource nor is an admin.
var ErrForbidden = errors.New("forbidden")
