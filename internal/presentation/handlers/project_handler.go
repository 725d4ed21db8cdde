package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/application/dto"
	"deptrack-core/internal/application/service"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
	userService    *service.UserService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, userService *service.UserService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		userService:    userService,
	}
}

// ImportProject handles POST /projects
// @Summary Import a dependency manifest as a project
// @Description Fetches the named manifest file from one of the user's repositories and stores it as a project. Importing the same repository, branch and path again replaces the stored content.
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body dto.ImportProjectRequest true "Import request; branch defaults to master, path to Gemfile"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) ImportProject(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var req dto.ImportProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	response, err := h.projectService.Import(c.Request.Context(), u, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListProjects handles GET /projects
// @Summary List the user's imported projects
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.ProjectListResponse
// @Failure 401 {object} ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	page, limit := parsePagination(c)

	response, err := h.projectService.ListProjects(c.Request.Context(), u, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteProjects handles DELETE /projects
// @Summary Delete a repository's projects
// @Description Removes all of the user's projects for a repository and branch. Fails when nothing matches.
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteProjectsRequest true "Delete request; branch defaults to master"
// @Success 200 {object} dto.DeleteProjectsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /projects [delete]
func (h *ProjectHandler) DeleteProjects(c *gin.Context) {
	u, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	var req dto.DeleteProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	response, err := h.projectService.Delete(c.Request.Context(), u, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
