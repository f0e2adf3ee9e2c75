package oauthmodel

import "errors"

var (
	ErrEmptyCode        = errors.New("authorization code is empty")
	ErrCodeTooLong      = errors.New("authorization code is too long")
	ErrCodeInvalidChars = errors.New("authorization code contains invalid characters")
)
