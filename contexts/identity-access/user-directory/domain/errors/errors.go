package errors

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidUserInput       = errors.New("invalid user input")
	ErrEmailConflict          = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidPermissionGrant = errors.New("invalid permission grant")
	ErrCannotDeclineApproved  = errors.New("cannot decline an already approved user")
	ErrCannotDemoteLastAdmin  = errors.New("cannot demote the last admin")
)
