package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrNoMindmap       = errors.New("no mind map generated yet")
	ErrNothingSelected = errors.New("no topic selected")
	ErrProvider        = errors.New("model provider failure")
)
