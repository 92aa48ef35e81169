package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced category or question does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrdinal is returned when a question number is outside 1..N
	ErrInvalidOrdinal = errors.New("invalid question number")

	// ErrUnauthorized is returned when a non-admin enters the admin flow
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyInput is returned when a name, question or answer is blank
	ErrEmptyInput = errors.New("empty input")
)
