package dto

// ImportProjectRequest represents the request to import a manifest as a project
type ImportProjectRequest struct {
	Repository string `json:"repository" binding:"required"`
	Branch     string `json:"branch"`
	Path       string `json:"path"`
}

// DeleteProjectsRequest represents the request to delete a repository's projects
type DeleteProjectsRequest struct {
	Repository string `json:"repository" binding:"required"`
	Branch     string `json:"branch"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Repository string `json:"repository"`
	Branch     string `json:"branch"`
	Path       string `json:"path"`
	ImportedAt string `json:"imported_at"`
	CreatedAt  string `json:"created_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []*ProjectResponse `json:"projects"`
	Pagination PaginationResponse `json:"pagination"`
}

// DeleteProjectsResponse reports how many projects a delete removed
type DeleteProjectsResponse struct {
	Removed int64 `json:"removed"`
}
