package apperrors

import "errors"

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrDuplicateStudent = errors.New("email or student ID already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Request errors
var (
	ErrBadRequest = errors.New("bad request")
)
