// Package identity talks to the external identity provider that owns user
// accounts and their linked OAuth connections.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"deptrack-core/internal/config"
)

// Client represents an identity provider API client
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a new identity provider API client
func NewClient(cfg *config.AuthConfig) *Client {
	return &Client{
		apiURL:    cfg.APIURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// User represents a user profile from the identity provider
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type userResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

type oauthTokenResponse struct {
	Data []struct {
		Token          string `json:"token"`
		Provider       string `json:"provider"`
		Label          string `json:"label"`
		ProviderUserID string `json:"provider_user_id"`
	} `json:"data"`
}

// GetUser fetches a user profile by ID from the identity provider
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var parsed userResponse
	if err := c.get(ctx, fmt.Sprintf("%s/users/%s", c.apiURL, userID), &parsed); err != nil {
		return nil, err
	}

	user := &User{
		ID:       parsed.ID,
		Username: parsed.Username,
	}
	if len(parsed.EmailAddresses) > 0 {
		user.Email = parsed.EmailAddresses[0].EmailAddress
	}

	return user, nil
}

// GitHubToken is a user's GitHub OAuth connection as reported by the
// identity provider.
type GitHubToken struct {
	Token     string
	Login     string
	AccountID int64
}

// GetGitHubAccessToken fetches the user's GitHub OAuth access token from the
// identity provider. It fails when the user has not linked a GitHub account.
func (c *Client) GetGitHubAccessToken(ctx context.Context, userID string) (*GitHubToken, error) {
	url := fmt.Sprintf("%s/users/%s/oauth_access_tokens/oauth_github", c.apiURL, userID)

	var parsed oauthTokenResponse
	if err := c.get(ctx, url, &parsed); err != nil {
		return nil, err
	}

	for _, t := range parsed.Data {
		if t.Token == "" {
			continue
		}
		accountID, _ := strconv.ParseInt(t.ProviderUserID, 10, 64)
		return &GitHubToken{
			Token:     t.Token,
			Login:     t.Label,
			AccountID: accountID,
		}, nil
	}

	return nil, fmt.Errorf("no GitHub access token found for user %s", userID)
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
