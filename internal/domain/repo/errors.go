package repo

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

// Predefined domain errors

func ErrRepositoryNotFound(fullname string) *DomainError {
	return &DomainError{
		Code:    "REPOSITORY_NOT_FOUND",
		Message: fmt.Sprintf("repository %s not found", fullname),
	}
}

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    "INVALID_REPOSITORY_DATA",
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

func ErrGitHubNotConnected(userID string) *DomainError {
	return &DomainError{
		Code:    "GITHUB_NOT_CONNECTED",
		Message: fmt.Sprintf("user %s has no linked GitHub account", userID),
	}
}

func ErrSyncFailed(err error) *DomainError {
	return &DomainError{
		Code:    "SYNC_FAILED",
		Message: "failed to sync repositories from GitHub",
		Err:     err,
	}
}
