package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrProtocolNotFound = errors.New("protocol not found")
	ErrInvalidInput     = errors.New("invalid input")
)
