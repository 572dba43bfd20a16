package store

import (
	"context"
	"fmt"
	"time"

	"github.com/m4ster-slave/profilegen/internal/config"
	"github.com/m4ster-slave/profilegen/internal/models"
	sdk "github.com/surrealdb/surrealdb.go"
)

// Client persists one snapshot per generation run so `history` can show
// how the profile moved between runs.
type Client struct {
	db *sdk.DB
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	db, err := sdk.FromEndpointURLString(ctx, cfg.SurrealURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, sdk.Auth{
		Namespace: cfg.SurrealNS,
		Database:  cfg.SurrealDB,
		Username:  cfg.SurrealUser,
		Password:  cfg.SurrealPass,
	}); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("signing in: %w", err)
	}

	if err := db.Use(ctx, cfg.SurrealNS, cfg.SurrealDB); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("selecting ns/db: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close(ctx)
}

func (c *Client) InitSchema(ctx context.Context) error {
	schema := `
DEFINE TABLE IF NOT EXISTS snapshot SCHEMAFULL;

DEFINE FIELD IF NOT EXISTS username       ON TABLE snapshot TYPE string;
DEFINE FIELD IF NOT EXISTS commits        ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS pull_requests  ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS issues         ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS stars          ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS repos_owned    ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS contributed_to ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS followers      ON TABLE snapshot TYPE int;
DEFINE FIELD IF NOT EXISTS top_language   ON TABLE snapshot TYPE string;
DEFINE FIELD IF NOT EXISTS generated_at   ON TABLE snapshot TYPE datetime;

DEFINE INDEX IF NOT EXISTS idx_generated_at ON TABLE snapshot FIELDS generated_at;
`
	_, err := sdk.Query[any](ctx, c.db, schema, nil)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Client) Save(ctx context.Context, s models.Snapshot) error {
	generatedAt := s.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	_, err := sdk.Query[any](ctx, c.db,
		`CREATE snapshot CONTENT $data`,
		map[string]any{
			"data": map[string]any{
				"username":       s.Username,
				"commits":        s.Commits,
				"pull_requests":  s.PullRequests,
				"issues":         s.Issues,
				"stars":          s.Stars,
				"repos_owned":    s.ReposOwned,
				"contributed_to": s.ContributedTo,
				"followers":      s.Followers,
				"top_language":   s.TopLanguage,
				"generated_at":   generatedAt,
			},
		})
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// List returns up to limit snapshots, newest first.
func (c *Client) List(ctx context.Context, limit int) ([]models.Snapshot, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := sdk.Query[[]models.Snapshot](ctx, c.db,
		fmt.Sprintf(`SELECT * FROM snapshot ORDER BY generated_at DESC LIMIT %d`, limit),
		nil)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	if len(*results) == 0 {
		return nil, nil
	}
	return (*results)[0].Result, nil
}

// Latest returns the most recent snapshot, or nil when none exist.
func (c *Client) Latest(ctx context.Context) (*models.Snapshot, error) {
	snaps, err := c.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}
