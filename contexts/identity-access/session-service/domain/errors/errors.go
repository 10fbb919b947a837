package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("could not validate credentials")
	ErrTokenExpired    = errors.New("session token expired")
	ErrProfileNotFound = errors.New("profile not found")
)
