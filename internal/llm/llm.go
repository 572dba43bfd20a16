package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/m4ster-slave/profilegen/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const systemPrompt = `You write a single short caption line for a developer's profile README.
Given contribution numbers, produce one wry, self-deprecating sentence (max 80 characters).
Return ONLY the sentence. No quotes, no markdown, no emoji.`

// Caption asks the model for a one-line caption based on the stats
// summary. Callers fall back to a fixed caption on any error, so a
// failure here never blocks report generation.
func (c *Client) Caption(ctx context.Context, s models.StatsSummary) (string, error) {
	userMsg := fmt.Sprintf(
		"Commits: %d\nPull requests: %d\nIssues: %d\nStars: %d\nRepos owned: %d\nContributed to: %d",
		s.Commits, s.PullRequests, s.Issues, s.Stars, s.ReposOwned, s.ContributedTo,
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("LLM caption call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	caption := sanitize(resp.Choices[0].Message.Content)
	if caption == "" {
		return "", fmt.Errorf("empty caption returned")
	}
	return caption, nil
}

// sanitize reduces the model output to one plain line: first line only,
// surrounding quotes and whitespace stripped.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = s[:i]
	}
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
