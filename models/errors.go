package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// UnprocessableEntityError is rendered with the http status code 422
	UnprocessableEntityError = errors.New("unprocessable entity")

	// RateLimitedError is rendered with the http status code 429
	RateLimitedError = errors.New("rate limit exceeded")
)

// PublicError is an error whose message is shown to API callers as is. It unwraps to one of the base errors,
// which decides the status code.
type PublicError struct {
	message string
	kind    error
}

func NewPublicError(kind error, message string) *PublicError {
	return &PublicError{message: message, kind: kind}
}

func (e *PublicError) Error() string {
	return e.message
}

func (e *PublicError) Unwrap() error {
	return e.kind
}

// Request errors
var (
	ErrRequestMustBeJson   = NewPublicError(BadParameterError, "Request must be JSON")
	ErrNameRequired        = NewPublicError(BadParameterError, "Name is required and cannot be empty")
	ErrAffiliationRequired = NewPublicError(BadParameterError, "Affiliation is required and cannot be empty")
	ErrEntityInfoRequired  = NewPublicError(BadParameterError, "Entity information is required")
	ErrInvalidHistoryId    = NewPublicError(BadParameterError, "Invalid history id")
)

// Authentication related errors
var (
	ErrEmailRequired          = NewPublicError(BadParameterError, "Email is required")
	ErrCredentialsRequired    = NewPublicError(BadParameterError, "Email and password are required")
	ErrPasswordTooShort       = NewPublicError(BadParameterError, "Password must be at least 8 characters")
	ErrPasswordTooLong        = NewPublicError(BadParameterError, "Password must be at most 72 bytes")
	ErrInvalidCredentials     = NewPublicError(UnAuthorizedError, "Invalid email or password")
	ErrInvalidToken           = NewPublicError(UnAuthorizedError, "Invalid authentication token")
	ErrMissingToken           = NewPublicError(UnAuthorizedError, "Missing authorization header")
	ErrEmailAlreadyRegistered = NewPublicError(ConflictError, "User already registered")
	ErrUnknownUser            = NewPublicError(NotFoundError, "User not found")
)

var ErrHistoryNotFound = NewPublicError(NotFoundError, "History item not found")

var ErrRateLimited = NewPublicError(RateLimitedError, "Rate limit exceeded, please try again later")
