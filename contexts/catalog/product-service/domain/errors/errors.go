package errors

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductInput = errors.New("invalid product input")
	ErrSKUConflict         = errors.New("sku already in use")
)
