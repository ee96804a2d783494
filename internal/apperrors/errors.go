package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid authentication credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation is not valid for the resource's current state,
// e.g. accepting a claim on an item that is already resolved.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInvalidOrExpiredOTP indicates no unused, unexpired OTP matched the supplied code.
var ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
