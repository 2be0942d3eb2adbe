package domain

import "errors"

// Доменные ошибки AI-сервиса
var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrEmptyMessage   = errors.New("message is required")
	ErrEmptyQuery     = errors.New("query is required")
)
