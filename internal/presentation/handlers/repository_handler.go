package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/application/service"
)

// RepositoryHandler handles repository-related HTTP requests
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
	userService       *service.UserService
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService, userService *service.UserService) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
		userService:       userService,
	}
}

// ListRepositories handles GET /repos
// @Summary List the user's GitHub repositories
// @Description Returns the locally cached repositories with filtering and pagination. A first call with an empty cache fetches from GitHub before answering.
// @Tags Repositories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Param language query string false "Exact language filter"
// @Param owner query string false "Exact owner login filter"
// @Param owner_type query string false "Owner type filter" Enums(user, organization)
// @Param private query boolean false "Visibility filter"
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /repos [get]
func (h *RepositoryHandler) ListRepositories(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var filter dto.RepositoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_filter",
			Message: "Invalid filter parameters",
			Details: err.Error(),
		})
		return
	}

	page, limit := parsePagination(c)

	response, err := h.repositoryService.ListRepositories(c.Request.Context(), u, filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// TriggerSync handles POST /repos/sync
// @Summary Trigger a background repository sync
// @Description Starts a full re-fetch of the user's repositories from GitHub unless one is already running or recently finished. Always answers immediately with the current sync status.
// @Tags Repositories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /repos/sync [post]
func (h *RepositoryHandler) TriggerSync(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	response, err := h.repositoryService.TriggerSync(c.Request.Context(), u)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRepository handles GET /repos/:token
// @Summary Show one repository by its encoded name
// @Description Resolves a URL-safe repository token (slashes as colons, dots as tildes) to the cached repository record.
// @Tags Repositories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Encoded repository full name, e.g. rails:rails"
// @Success 200 {object} dto.RepositoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /repos/{token} [get]
func (h *RepositoryHandler) GetRepository(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	response, err := h.repositoryService.GetRepositoryByToken(c.Request.Context(), u, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
