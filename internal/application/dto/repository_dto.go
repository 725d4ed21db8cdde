package dto

// RepositoryResponse represents repository data in API responses.
// Token is the URL-safe encoding of the full name, usable in show paths.
type RepositoryResponse struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Token         string  `json:"token"`
	Owner         string  `json:"owner"`
	OwnerType     string  `json:"owner_type"`
	Language      *string `json:"language"`
	Private       bool    `json:"private"`
	DefaultBranch string  `json:"default_branch"`
	CreatedAt     string  `json:"created_at"`
}

// RepositoryListResponse represents a paginated list of repositories
type RepositoryListResponse struct {
	Repositories []*RepositoryResponse `json:"repositories"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// RepositoryListFilter carries the optional exact-match list filters
type RepositoryListFilter struct {
	Language  string `form:"language"`
	Owner     string `form:"owner"`
	OwnerType string `form:"owner_type"`
	Private   string `form:"private"`
}

// SyncStatusResponse reports the state of a user's repository sync
type SyncStatusResponse struct {
	Status string `json:"status"`
}
