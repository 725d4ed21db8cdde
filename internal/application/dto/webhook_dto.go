package dto

// PushCommit is one commit in a push webhook payload
type PushCommit struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Removed  []string `json:"removed"`
}

// PushEvent is the subset of a GitHub push webhook payload this service reads
type PushEvent struct {
	Ref     string       `json:"ref"`
	Commits []PushCommit `json:"commits"`
	Pusher  struct {
		Name string `json:"name"`
	} `json:"pusher"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

// WebhookResponse acknowledges a processed webhook
type WebhookResponse struct {
	Message string `json:"message"`
}
