package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "The Octocat", User{Login: "octocat", Name: "The Octocat"}.DisplayName())
	assert.Equal(t, "octocat", User{Login: "octocat"}.DisplayName())
}

func TestUserURLs(t *testing.T) {
	u := User{Login: "octocat"}
	assert.Equal(t, "https://github.com/octocat", u.ProfileURL())
	assert.Equal(t, "https://github.com/octocat?tab=repositories", u.RepositoriesURL())

	u.HTMLURL = "https://example.test/octocat"
	assert.Equal(t, "https://example.test/octocat?tab=repositories", u.RepositoriesURL())
}

func TestEventDecoding(t *testing.T) {
	raw := `{
		"type": "PushEvent",
		"repo": {"name": "octocat/hello-world"},
		"created_at": "2024-03-15T12:00:00Z",
		"payload": {"commits": [{"sha": "a"}, {"sha": "b"}]}
	}`

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	assert.Equal(t, PushEvent, ev.Type)
	assert.Equal(t, "octocat/hello-world", ev.Repo.Name)
	assert.True(t, ev.CreatedAt.Equal(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.Contains(t, string(ev.Payload), "commits")
}

func TestRepoDecoding(t *testing.T) {
	raw := `{
		"id": 1296269,
		"name": "hello-world",
		"html_url": "https://github.com/octocat/hello-world",
		"description": null,
		"language": "Go",
		"stargazers_count": 80,
		"forks_count": 9,
		"updated_at": "2024-03-01T08:00:00Z"
	}`

	var r Repo
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, int64(1296269), r.ID)
	assert.Empty(t, r.Description)
	assert.Equal(t, 80, r.StargazersCount)
	assert.Equal(t, 2024, r.UpdatedAt.Year())
}
