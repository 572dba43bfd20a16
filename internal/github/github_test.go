package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(srv *httptest.Server) *Client {
	c := NewClient("test-token", zap.NewNop())
	c.httpClient = srv.Client()
	c.baseURL = srv.URL
	c.graphqlURL = srv.URL + "/graphql"
	return c
}

func TestFetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/octocat/events/public", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[
			{"type":"PushEvent","repo":{"name":"a/b"},"created_at":"2024-01-02T03:04:05Z"},
			{"type":"PullRequestEvent","repo":{"name":"c/d"},"created_at":"not-a-timestamp"},
			{"type":"WatchEvent","repo":{"name":"e/f"},"created_at":"2024-01-01T00:00:00Z"}
		]`)
	}))
	defer srv.Close()

	events, err := testClient(srv).FetchEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Push", events[0].Kind)
	assert.Equal(t, "a/b", events[0].Repo)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), events[0].Timestamp.UTC())
	assert.False(t, events[0].Degraded)

	// Unparseable timestamp degrades to "now" instead of failing the feed.
	assert.Equal(t, "PullRequest", events[1].Kind)
	assert.True(t, events[1].Degraded)
	assert.WithinDuration(t, time.Now(), events[1].Timestamp, time.Minute)

	assert.Equal(t, "Watch", events[2].Kind)
}

func TestFetchLanguages(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat/repos":
			if r.URL.Query().Get("page") == "2" {
				fmt.Fprintf(w, `[{"name":"three","languages_url":"%s/repos/octocat/three/languages"}]`, srv.URL)
				return
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/users/octocat/repos?per_page=100&page=2>; rel="next"`, srv.URL))
			fmt.Fprintf(w, `[
				{"name":"one","languages_url":"%s/repos/octocat/one/languages"},
				{"name":"two"}
			]`, srv.URL)
		case "/repos/octocat/one/languages":
			fmt.Fprint(w, `{"Go":600,"Rust":100}`)
		case "/repos/octocat/three/languages":
			fmt.Fprint(w, `{"Go":200}`)
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	perRepo, err := testClient(srv).FetchLanguages(context.Background(), "octocat")
	require.NoError(t, err)

	// Repo "two" has no languages_url and is skipped; order follows the
	// repository listing across pages.
	require.Len(t, perRepo, 2)
	assert.Equal(t, map[string]int64{"Go": 600, "Rust": 100}, perRepo[0])
	assert.Equal(t, map[string]int64{"Go": 200}, perRepo[1])
}

func TestFetchFollowers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/octocat", r.URL.Path)
		fmt.Fprint(w, `{"login":"octocat","followers":42}`)
	}))
	defer srv.Close()

	followers, err := testClient(srv).FetchFollowers(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 42, followers)
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graphql", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, `{"data":{"user":{
			"contributionsCollection":{
				"totalCommitContributions":1000,
				"totalPullRequestContributions":56,
				"totalIssueContributions":7,
				"restrictedContributionsCount":234
			},
			"repositories":{"totalCount":10,"nodes":[{"stargazerCount":80},{"stargazerCount":9}]},
			"repositoriesContributedTo":{"totalCount":3}
		}}}`)
	}))
	defer srv.Close()

	stats, err := testClient(srv).FetchStats(context.Background(), "octocat")
	require.NoError(t, err)

	// Restricted contributions count toward commits; stars sum over nodes.
	assert.Equal(t, 1234, stats.Commits)
	assert.Equal(t, 56, stats.PullRequests)
	assert.Equal(t, 7, stats.Issues)
	assert.Equal(t, 89, stats.Stars)
	assert.Equal(t, 10, stats.ReposOwned)
	assert.Equal(t, 3, stats.ContributedTo)
}

func TestFetchStats_GraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"Bad credentials"}]}`)
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchStats(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad credentials")
}

func TestFetchEvents_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchEvents(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{
			"next and last",
			`<https://api.github.com/user/repos?page=2>; rel="next", <https://api.github.com/user/repos?page=5>; rel="last"`,
			"https://api.github.com/user/repos?page=2",
		},
		{
			"no next",
			`<https://api.github.com/user/repos?page=1>; rel="prev"`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextLink(tt.header))
		})
	}
}
