package errors

import "errors"

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderInput       = errors.New("invalid order input")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrOrderNumberConflict     = errors.New("order number already exists")
)
