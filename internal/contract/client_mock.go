package contract

import (
	"context"

	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitHubClient is a mock implementation of GitHubClient for testing.
type MockGitHubClient struct {
	mock.Mock
}

var _ GitHubClient = &MockGitHubClient{} // Compile-time check

// GetUser implements the GitHubClient interface.
func (m *MockGitHubClient) GetUser(ctx context.Context, handle string) (schema.User, error) {
	ret := m.Called(ctx, handle)
	user, _ := ret.Get(0).(schema.User)
	return user, ret.Error(1)
}

// ListRepos implements the GitHubClient interface.
func (m *MockGitHubClient) ListRepos(ctx context.Context, handle string, perPage int) ([]schema.Repo, error) {
	ret := m.Called(ctx, handle, perPage)
	repos, _ := ret.Get(0).([]schema.Repo)
	return repos, ret.Error(1)
}

// ListEvents implements the GitHubClient interface.
func (m *MockGitHubClient) ListEvents(ctx context.Context, handle string) ([]schema.Event, error) {
	ret := m.Called(ctx, handle)
	events, _ := ret.Get(0).([]schema.Event)
	return events, ret.Error(1)
}
