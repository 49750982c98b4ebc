package ui

import "errors"

var (
	ErrValidation   = errors.New("title and body are required")
	ErrCancelled    = errors.New("cancelled")
	ErrInvalidCode  = errors.New("code must be exactly 4 digits")
	ErrLocked       = errors.New("memo is locked")
	ErrNotFound     = errors.New("memo not found")
	ErrModalClosed  = errors.New("editor is not open")
	ErrWrongCode    = errors.New("wrong password")
	ErrEmptyBody    = errors.New("body is required")
	ErrNoAssistance = errors.New("text assistant unavailable")
)
