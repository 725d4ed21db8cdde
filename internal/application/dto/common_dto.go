package dto

// PaginationResponse carries paging metadata in list responses
type PaginationResponse struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}
