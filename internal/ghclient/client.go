// Package ghclient implements the GitHub REST API reads used by ghpulse.
package ghclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
)

// maxBodyBytes caps how much of a response body gets read.
const maxBodyBytes = 10 * 1024 * 1024

// RESTClient talks to the REST API without authentication.
type RESTClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

var _ contract.GitHubClient = &RESTClient{} // Compile-time check

// NewRESTClient creates a client for the API rooted at baseURL.
// A zero timeout means requests wait until the server answers.
func NewRESTClient(baseURL, userAgent string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// NewRESTClientFromConfig creates a client using the validated config.
func NewRESTClientFromConfig(cfg *contract.Config) *RESTClient {
	return NewRESTClient(cfg.APIURL, cfg.UserAgent, cfg.Timeout)
}

// GetUser implements the GitHubClient interface.
func (c *RESTClient) GetUser(ctx context.Context, handle string) (schema.User, error) {
	var user schema.User
	err := c.getJSON(ctx, "/users/"+url.PathEscape(handle), nil, &user)
	return user, err
}

// ListRepos implements the GitHubClient interface.
func (c *RESTClient) ListRepos(ctx context.Context, handle string, perPage int) ([]schema.Repo, error) {
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", strconv.Itoa(perPage))

	var repos []schema.Repo
	err := c.getJSON(ctx, "/users/"+url.PathEscape(handle)+"/repos", query, &repos)
	return repos, err
}

// ListEvents implements the GitHubClient interface.
func (c *RESTClient) ListEvents(ctx context.Context, handle string) ([]schema.Event, error) {
	var events []schema.Event
	err := c.getJSON(ctx, "/users/"+url.PathEscape(handle)+"/events/public", nil, &events)
	return events, err
}

// getJSON performs a GET and decodes a 200 response into out.
// Every failure is returned as a *contract.QueryError.
func (c *RESTClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &contract.QueryError{Kind: contract.GenericError, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &contract.QueryError{Kind: contract.GenericError, Err: fmt.Errorf("failed to fetch %s: %w", path, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &contract.QueryError{Kind: contract.GenericError, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return contract.NewStatusError(resp.StatusCode, apiMessage(resp.Status, body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &contract.QueryError{Kind: contract.GenericError, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode %s: %w", path, err)}
	}
	return nil
}

// apiMessage extracts the "message" field of an API error body when present.
func apiMessage(status string, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("HTTP %s: %s", status, payload.Message)
	}
	return errors.New("HTTP " + status)
}
