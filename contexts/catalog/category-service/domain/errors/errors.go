package errors

import "errors"

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategoryInput = errors.New("invalid category input")
	ErrSlugConflict         = errors.New("slug already in use")
	ErrParentNotFound       = errors.New("parent category not found")
	ErrCategoryHasChildren  = errors.New("category has child categories")
)
