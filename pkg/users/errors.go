package users

import (
	"errors"
	"fmt"
)

var ErrInvalidEmail = errors.New("recovery email is not a valid email address")

// AlreadyExistsError carries the colliding principal name rather than the
// recovery email, to keep the email out of logs and responses.
type AlreadyExistsError struct {
	Username string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("a user already exists with username %s", e.Username)
}

type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no user found for %s", e.UserID)
}

// UnknownGroupError means the requested group role name has no configured
// directory group id.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("no directory group configured for %q", e.Name)
}

// ServiceError wraps a directory-reported failure or an unexpected error.
type ServiceError struct {
	Message string
	Reason  string
}

func (e *ServiceError) Error() string {
	if e.Reason == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Reason)
}

func newServiceError(message string, err error) *ServiceError {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return &ServiceError{
		Message: message,
		Reason:  reason,
	}
}
