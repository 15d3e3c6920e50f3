package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to process request body"
	MessageFailedAuth        = "failed to verify current user"
	MessageInfraFailure      = "Try again in a few minutes."
	MessageUnknownFailure    = "Unknown error. Contact service manager."

	ErrTokenNotFound = errors.New("Token does not exist.")
	ErrTokenInvalid  = errors.New("The token is malformed or has a wrong signature.")
	ErrTokenExpired  = errors.New("An expired token. Please log in again.")
	ErrTokenMismatch = errors.New("The wrong approach. Go back to the previous page")
)
