package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSession(client contract.GitHubClient) *Session {
	s := NewSession(&contract.Config{Location: time.UTC}, client)
	s.clock = func() time.Time { return refTime }
	return s
}

func TestNewSession_DefaultTab(t *testing.T) {
	s := NewSession(&contract.Config{}, &contract.MockGitHubClient{})
	assert.Equal(t, schema.ReposTab, s.Tab())

	s = NewSession(&contract.Config{Tab: schema.ActivityTab}, &contract.MockGitHubClient{})
	assert.Equal(t, schema.ActivityTab, s.Tab())
}

func TestSession_QuerySameHandleIsNoop(t *testing.T) {
	client := newOctocatClient("octocat")
	s := newTestSession(client)

	changed, err := s.Query(context.Background(), "octocat")
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, s.Report())
	assert.Equal(t, "octocat", s.Searched())

	changed, err = s.Query(context.Background(), "@octocat")
	require.NoError(t, err)
	assert.False(t, changed, "Re-submitting the displayed handle does nothing")

	client.AssertNumberOfCalls(t, "GetUser", 1)
	client.AssertNumberOfCalls(t, "ListRepos", 1)
	client.AssertNumberOfCalls(t, "ListEvents", 1)
}

func TestSession_FailureClearsPreviousReport(t *testing.T) {
	client := newOctocatClient("octocat")
	notFound := contract.NewStatusError(404, errors.New("Not Found"))
	client.On("GetUser", mock.Anything, "ghost").Return(schema.User{}, notFound)
	client.On("ListRepos", mock.Anything, "ghost", contract.MaxRepoLimit).Return([]schema.Repo{}, nil)
	client.On("ListEvents", mock.Anything, "ghost").Return([]schema.Event{}, nil)
	s := newTestSession(client)

	_, err := s.Query(context.Background(), "octocat")
	require.NoError(t, err)

	changed, err := s.Query(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, changed)
	assert.Nil(t, s.Report(), "A failed query never shows the previous account")
	assert.Equal(t, "", s.Searched())
	assert.Equal(t, "User not found", contract.UserMessage(s.Err()))

	// A failed handle is retried when asked again
	_, err = s.Query(context.Background(), "ghost")
	require.Error(t, err)
	client.AssertNumberOfCalls(t, "GetUser", 3)

	// Coming back to the earlier handle refetches it and clears the error
	changed, err = s.Query(context.Background(), "octocat")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, s.Err())
	require.NotNil(t, s.Report())
	assert.Equal(t, "octocat", s.Report().Handle)
}

func TestSession_InvalidHandleKeepsState(t *testing.T) {
	client := newOctocatClient("octocat")
	s := newTestSession(client)
	_, err := s.Query(context.Background(), "octocat")
	require.NoError(t, err)

	changed, err := s.Query(context.Background(), "not a handle")
	require.Error(t, err)
	assert.False(t, changed)
	assert.NotNil(t, s.Report())
	assert.Equal(t, "octocat", s.Searched())
}

func TestSession_SetTabDoesNotRefetch(t *testing.T) {
	client := newOctocatClient("octocat")
	s := newTestSession(client)
	_, err := s.Query(context.Background(), "octocat")
	require.NoError(t, err)

	s.SetTab(schema.ActivityTab)
	assert.Equal(t, schema.ActivityTab, s.Tab())
	assert.NotNil(t, s.Report())
	client.AssertNumberOfCalls(t, "GetUser", 1)
}
