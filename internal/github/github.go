package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m4ster-slave/profilegen/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
	userAgent         = "profilegen/0.1"

	// Bounded fan-out for the per-repo language requests.
	languageFetchLimit = 5
)

// Client wraps the GitHub REST and GraphQL APIs for a single profile.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	graphqlURL string
	log        *zap.Logger
}

func NewClient(token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		graphqlURL: defaultGraphQLURL,
		log:        log,
	}
}

type rawEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt string `json:"created_at"`
}

type repoRecord struct {
	Name         string `json:"name"`
	LanguagesURL string `json:"languages_url"`
}

type userRecord struct {
	Followers int `json:"followers"`
}

// FetchEvents returns the profile's public activity feed, normalized
// into typed events in the order the API reports them (newest first).
// Events with an unparseable timestamp are kept with the current time
// substituted and flagged degraded.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]models.ActivityEvent, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events/public", c.baseURL, url.PathEscape(username))

	var raw []rawEvent
	if _, err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	events := make([]models.ActivityEvent, 0, len(raw))
	for _, e := range raw {
		ev := models.ActivityEvent{
			Kind: strings.TrimSuffix(e.Type, "Event"),
			Repo: e.Repo.Name,
		}
		ts, err := time.Parse(time.RFC3339, e.CreatedAt)
		if err != nil {
			c.log.Warn("unparseable event timestamp, substituting now",
				zap.String("created_at", e.CreatedAt),
				zap.String("repo", e.Repo.Name))
			ts = time.Now().UTC()
			ev.Degraded = true
		}
		ev.Timestamp = ts
		events = append(events, ev)
	}
	return events, nil
}

// FetchLanguages returns one language→bytes mapping per repository owned
// by the profile. Repositories without a languages_url are skipped; the
// result keeps repository listing order so downstream aggregation stays
// deterministic.
func (c *Client) FetchLanguages(ctx context.Context, username string) ([]map[string]int64, error) {
	repos, err := c.fetchRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	perRepo := make([]map[string]int64, len(repos))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(languageFetchLimit)

	for i, repo := range repos {
		if repo.LanguagesURL == "" {
			c.log.Warn("repository record missing languages_url, skipping",
				zap.String("repo", repo.Name))
			continue
		}
		g.Go(func() error {
			var langs map[string]int64
			if _, err := c.getJSON(gCtx, repo.LanguagesURL, &langs); err != nil {
				return fmt.Errorf("fetching languages for %s: %w", repo.Name, err)
			}
			perRepo[i] = langs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]map[string]int64, 0, len(perRepo))
	for _, langs := range perRepo {
		if langs != nil {
			out = append(out, langs)
		}
	}
	return out, nil
}

// FetchFollowers returns the profile's follower count.
func (c *Client) FetchFollowers(ctx context.Context, username string) (int, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var u userRecord
	if _, err := c.getJSON(ctx, endpoint, &u); err != nil {
		return 0, fmt.Errorf("fetching user: %w", err)
	}
	return u.Followers, nil
}

func (c *Client) fetchRepos(ctx context.Context, username string) ([]repoRecord, error) {
	var all []repoRecord
	next := fmt.Sprintf("%s/users/%s/repos?per_page=100", c.baseURL, url.PathEscape(username))

	for next != "" {
		var page []repoRecord
		header, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, fmt.Errorf("fetching repos: %w", err)
		}
		all = append(all, page...)
		next = nextLink(header.Get("Link"))
	}
	return all, nil
}

// getJSON performs an authenticated GET and decodes the JSON body into v.
// The response header is returned for Link-based pagination.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GitHub API returned %d for %s: %s", resp.StatusCode, endpoint, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}
	return resp.Header, nil
}

// nextLink extracts the rel="next" URL from a Link header, or "".
func nextLink(header string) string {
	if header == "" {
		return ""
	}
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		if strings.TrimSpace(section[1]) == `rel="next"` {
			return strings.Trim(strings.TrimSpace(section[0]), "<>")
		}
	}
	return ""
}
