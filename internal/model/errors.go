package model

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidScope  = errors.New("invalid scope")
	ErrNotFound      = errors.New("not found")
	ErrUploadFailure = errors.New("upload failure")
	ErrInvalidCursor = errors.New("invalid cursor")
)
