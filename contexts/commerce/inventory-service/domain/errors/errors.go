package errors

import "errors"

var (
	ErrStockRecordNotFound = errors.New("stock record not found")
	ErrInvalidStockInput   = errors.New("invalid stock input")
	ErrInsufficientStock   = errors.New("adjustment would make stock negative")
)
