package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m4ster-slave/profilegen/internal/models"
)

const statsQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      totalCommitContributions
      totalPullRequestContributions
      totalIssueContributions
      restrictedContributionsCount
    }
    repositories(first: 100, ownerAffiliations: OWNER, isFork: false) {
      totalCount
      nodes {
        stargazerCount
      }
    }
    repositoriesContributedTo(first: 1, contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY]) {
      totalCount
    }
  }
}
`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type statsData struct {
	User struct {
		ContributionsCollection struct {
			TotalCommitContributions      int `json:"totalCommitContributions"`
			TotalPullRequestContributions int `json:"totalPullRequestContributions"`
			TotalIssueContributions       int `json:"totalIssueContributions"`
			RestrictedContributionsCount  int `json:"restrictedContributionsCount"`
		} `json:"contributionsCollection"`
		Repositories struct {
			TotalCount int `json:"totalCount"`
			Nodes      []struct {
				StargazerCount int `json:"stargazerCount"`
			} `json:"nodes"`
		} `json:"repositories"`
		RepositoriesContributedTo struct {
			TotalCount int `json:"totalCount"`
		} `json:"repositoriesContributedTo"`
	} `json:"user"`
}

// FetchStats runs the aggregated contributions query and maps it onto
// the six counters. Commits include contributions to private repos
// (restrictedContributionsCount); stars sum over owned non-fork repos.
func (c *Client) FetchStats(ctx context.Context, username string) (models.StatsSummary, error) {
	body, err := c.doGraphQL(ctx, statsQuery, map[string]any{"login": username})
	if err != nil {
		return models.StatsSummary{}, err
	}

	var data statsData
	if err := json.Unmarshal(body, &data); err != nil {
		return models.StatsSummary{}, fmt.Errorf("parsing stats response: %w", err)
	}

	stars := 0
	for _, node := range data.User.Repositories.Nodes {
		stars += node.StargazerCount
	}

	contrib := data.User.ContributionsCollection
	return models.StatsSummary{
		Commits:       contrib.TotalCommitContributions + contrib.RestrictedContributionsCount,
		PullRequests:  contrib.TotalPullRequestContributions,
		Issues:        contrib.TotalIssueContributions,
		Stars:         stars,
		ReposOwned:    data.User.Repositories.TotalCount,
		ContributedTo: data.User.RepositoriesContributedTo.TotalCount,
	}, nil
}

func (c *Client) doGraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("parsing GraphQL response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	return gqlResp.Data, nil
}
