package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")
	ErrDuplicateRecord  = errors.New("record already exists")

	// Authentication failures are distinct here so callers and tests can
	// tell them apart; handlers collapse them to one outward message.
	ErrInvalidAPIKey    = errors.New("invalid api key")
	ErrUnknownEmail     = errors.New("no user with that email")
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidToken     = errors.New("invalid or expired token")
)

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
