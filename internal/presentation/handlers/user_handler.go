package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/application/service"
)

// UserHandler handles user profile, favorites and notification requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile handles GET /user
// @Summary Get the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.userService.Profile(u))
}

// ListFavorites handles GET /user/favorites
// @Summary List the user's favorited projects
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.ProjectListResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/favorites [get]
func (h *UserHandler) ListFavorites(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	page, limit := parsePagination(c)

	response, err := h.userService.ListFavorites(c.Request.Context(), u, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// AddFavorite handles POST /user/favorites
// @Summary Favorite a project
// @Description Marks one of the user's projects as a favorite. Favoriting twice is a no-op.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddFavoriteRequest true "Project to favorite"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/favorites [post]
func (h *UserHandler) AddFavorite(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.userService.AddFavorite(c.Request.Context(), u, req.ProjectID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /user/favorites/:id
// @Summary Unfavorite a project
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/favorites/{id} [delete]
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	if err := h.userService.RemoveFavorite(c.Request.Context(), u, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListNotifications handles GET /user/notifications
// @Summary List the user's notifications, newest first
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.NotificationListResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/notifications [get]
func (h *UserHandler) ListNotifications(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	page, limit := parsePagination(c)

	response, err := h.userService.ListNotifications(c.Request.Context(), u, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /user/notifications/:id/read
// @Summary Mark a notification as read
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/notifications/{id}/read [put]
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	if err := h.userService.MarkNotificationRead(c.Request.Context(), u, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
