package service

import "errors"

// ErrInvalidCredentials indicates that provided login credentials are
// incorrect. The same error covers unknown email and wrong password so the
// response never reveals which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports caller input that is missing or malformed. The
// message is safe to return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(msg string) error {
	return &ValidationError{Message: msg}
}
