package ghclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL, "ghpulse-test", 5*time.Second)
}

func TestGetUser(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, "ghpulse-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"login":"octocat","name":"The Octocat","public_repos":8,"followers":100,"following":9}`))
	})

	user, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, 8, user.PublicRepos)
	assert.Equal(t, 100, user.Followers)
}

func TestListRepos_Query(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"a","updated_at":"2024-03-01T00:00:00Z"},{"id":2,"name":"b","updated_at":"2024-02-01T00:00:00Z"}]`))
	})

	repos, err := client.ListRepos(context.Background(), "octocat", 100)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "a", repos[0].Name)
}

func TestListEvents(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/events/public", r.URL.Path)
		_, _ = w.Write([]byte(`[{"type":"PushEvent","repo":{"name":"octocat/x"},"created_at":"2024-03-15T10:00:00Z","payload":{"commits":[{},{}]}}]`))
	})

	events, err := client.ListEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schema.PushEvent, events[0].Type)
	assert.JSONEq(t, `{"commits":[{},{}]}`, string(events[0].Payload))
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   contract.ErrorKind
	}{
		{http.StatusNotFound, `{"message":"Not Found"}`, contract.NotFoundError},
		{http.StatusForbidden, `{"message":"API rate limit exceeded"}`, contract.RateLimitError},
		{http.StatusTooManyRequests, ``, contract.RateLimitError},
		{http.StatusInternalServerError, `oops`, contract.GenericError},
		{http.StatusUnauthorized, `{}`, contract.GenericError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetUser(context.Background(), "ghost")
			require.Error(t, err)

			var qe *contract.QueryError
			require.True(t, errors.As(err, &qe))
			assert.Equal(t, tt.kind, qe.Kind)
			assert.Equal(t, tt.status, qe.Status)
		})
	}
}

func TestAPIMessageIncluded(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded for 127.0.0.1."}`))
	})

	_, err := client.ListEvents(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API rate limit exceeded")
}

func TestDecodeFailureIsGeneric(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := client.ListRepos(context.Background(), "octocat", 100)
	require.Error(t, err)
	assert.Equal(t, contract.GenericError, contract.AsQueryError(err).Kind)
}

func TestTransportFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	client := NewRESTClient(srv.URL, "ghpulse-test", time.Second)

	_, err := client.GetUser(context.Background(), "octocat")
	require.Error(t, err)
	qe := contract.AsQueryError(err)
	assert.Equal(t, contract.GenericError, qe.Kind)
	assert.Equal(t, 0, qe.Status)
}

func TestNewRESTClientFromConfig(t *testing.T) {
	cfg := &contract.Config{APIURL: "http://example.test", UserAgent: "ua", Timeout: 3 * time.Second}
	client := NewRESTClientFromConfig(cfg)
	assert.Equal(t, "http://example.test", client.baseURL)
	assert.Equal(t, "ua", client.userAgent)
	assert.Equal(t, 3*time.Second, client.http.Timeout)
}
