package project

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

func ErrProjectNotFound(id string) *DomainError {
	return &DomainError{
		Code:    "PROJECT_NOT_FOUND",
		Message: fmt.Sprintf("project %s not found", id),
	}
}

func ErrImportFailed(fullname, branch, path string, err error) *DomainError {
	return &DomainError{
		Code:    "IMPORT_FAILED",
		Message: fmt.Sprintf("failed to import %s from %s@%s", path, fullname, branch),
		Err:     err,
	}
}

func ErrNotCollaborator(login, projectID string) *DomainError {
	return &DomainError{
		Code:    "NOT_COLLABORATOR",
		Message: fmt.Sprintf("%s is not a collaborator on project %s", login, projectID),
	}
}

func ErrNoRelevantChanges(projectID string) *DomainError {
	return &DomainError{
		Code:    "NO_RELEVANT_CHANGES",
		Message: fmt.Sprintf("push touched no dependency files for project %s", projectID),
	}
}

func ErrFavoriteNotFound(projectID string) *DomainError {
	return &DomainError{
		Code:    "FAVORITE_NOT_FOUND",
		Message: fmt.Sprintf("project %s is not a favorite", projectID),
	}
}
