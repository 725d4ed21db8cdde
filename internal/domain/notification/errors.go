package notification

import "fmt"

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func ErrNotificationNotFound(id string) *DomainError {
	return &DomainError{
		Code:    "NOTIFICATION_NOT_FOUND",
		Message: fmt.Sprintf("notification %s not found", id),
	}
}
