package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmptyDestination     = errors.New("destination is required")
	ErrAIServiceUnavailable = errors.New("AI service unavailable")
	ErrMalformedAIResponse  = errors.New("AI response is not valid JSON")
	ErrNoteNotFound         = errors.New("note not found")
)
