package apperrors

import "errors"

// ErrNotFound indicates that a requested document or embedded element could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credential is missing, invalid or expired.
var ErrUnauthorized = errors.New("unauthorized")
