package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/application/service"
	"deptrack-core/internal/domain/notification"
	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/repo"
	"deptrack-core/internal/domain/user"
	"deptrack-core/internal/middleware"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// statusByCode maps domain error codes to HTTP statuses. Lookup failures
// that the caller could have avoided answer 400, GitHub-side failures 500.
var statusByCode = map[string]int{
	"REPOSITORY_NOT_FOUND":    http.StatusBadRequest,
	"PROJECT_NOT_FOUND":       http.StatusBadRequest,
	"FAVORITE_NOT_FOUND":      http.StatusBadRequest,
	"NOTIFICATION_NOT_FOUND":  http.StatusBadRequest,
	"NO_RELEVANT_CHANGES":     http.StatusBadRequest,
	"GITHUB_NOT_CONNECTED":    http.StatusBadRequest,
	"INVALID_REPOSITORY_DATA": http.StatusBadRequest,
	"INVALID_USER_DATA":       http.StatusBadRequest,
	"USER_NOT_FOUND":          http.StatusBadRequest,
	"NOT_COLLABORATOR":        http.StatusForbidden,
	"IMPORT_FAILED":           http.StatusInternalServerError,
	"SYNC_FAILED":             http.StatusInternalServerError,
}

// respondError translates a domain error into an HTTP response. Errors
// without a known code answer 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	code, message := domainCode(err)
	if code == "" {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Something went wrong",
		})
		return
	}

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= 500 {
		c.Error(err)
	}

	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func domainCode(err error) (code, message string) {
	var repoErr *repo.DomainError
	if errors.As(err, &repoErr) {
		return repoErr.Code, repoErr.Message
	}
	var projectErr *project.DomainError
	if errors.As(err, &projectErr) {
		return projectErr.Code, projectErr.Message
	}
	var userErr *user.DomainError
	if errors.As(err, &userErr) {
		return userErr.Code, userErr.Message
	}
	var notificationErr *notification.DomainError
	if errors.As(err, &notificationErr) {
		return notificationErr.Code, notificationErr.Message
	}
	return "", ""
}

// currentUser resolves the authenticated principal to a local user record
func currentUser(c *gin.Context, userService *service.UserService) (*user.User, bool) {
	authUser, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "User not found in context",
		})
		return nil, false
	}

	u, err := userService.GetOrCreateByExternalID(c.Request.Context(), authUser.ID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return u, true
}

// parsePagination reads page and limit query parameters with defaults
func parsePagination(c *gin.Context) (page, limit int32) {
	page = 1
	limit = 20

	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = int32(p)
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		limit = int32(l)
	}
	return page, limit
}
