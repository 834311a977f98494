package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenInvalid indicates a token that is malformed or carries an invalid signature.
var ErrTokenInvalid = errors.New("token invalid")

// ErrTokenExpired indicates a structurally valid token whose expiry has passed.
// Kept distinct from ErrTokenInvalid so the auth filter can log the two cases apart.
var ErrTokenExpired = errors.New("token expired")
