package dto

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	GitHubConnected bool   `json:"github_connected"`
	GitHubLogin     string `json:"github_login,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// AddFavoriteRequest represents the request to favorite a project
type AddFavoriteRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Unread        int64                   `json:"unread"`
	Pagination    PaginationResponse      `json:"pagination"`
}
