package errors

import "errors"

var (
	ErrTaxRuleNotFound     = errors.New("tax rule not found")
	ErrInvalidTaxRuleInput = errors.New("invalid tax rule input")
)
