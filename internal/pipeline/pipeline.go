package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/m4ster-slave/profilegen/internal/config"
	"github.com/m4ster-slave/profilegen/internal/github"
	"github.com/m4ster-slave/profilegen/internal/llm"
	"github.com/m4ster-slave/profilegen/internal/models"
	"github.com/m4ster-slave/profilegen/internal/report"
	"github.com/m4ster-slave/profilegen/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// User overrides the configured profile username.
	User string
	// Out overrides the configured output path.
	Out string
	// AICaption replaces the fixed caption with an LLM-generated one.
	AICaption bool
	// SkipStore disables the snapshot write even when the store is
	// configured.
	SkipStore bool
}

// Run fetches all profile data, composes the report, and writes it.
// Fetch failures are fatal; caption enrichment and snapshot storage
// degrade to warnings.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, opts Options) error {
	user := opts.User
	if user == "" {
		user = cfg.Username
	}
	out := opts.Out
	if out == "" {
		out = cfg.OutputPath
	}

	if cfg.GitHubToken == "" {
		log.Warn("GITHUB_TOKEN not set, using unauthenticated API (rate limited, no private contributions)")
	}

	gh := github.NewClient(cfg.GitHubToken, log)

	fmt.Printf("Fetching profile data for %s...\n", user)

	var (
		events    []models.ActivityEvent
		perRepo   []map[string]int64
		stats     models.StatsSummary
		followers int
	)

	// All fetches complete before any rendering starts; composition
	// itself is a pure pass over resident data.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = gh.FetchEvents(gCtx, user)
		return err
	})
	g.Go(func() (err error) {
		perRepo, err = gh.FetchLanguages(gCtx, user)
		return err
	})
	g.Go(func() (err error) {
		stats, err = gh.FetchStats(gCtx, user)
		return err
	})
	g.Go(func() (err error) {
		followers, err = gh.FetchFollowers(gCtx, user)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	languages := report.AggregateLanguages(perRepo)

	caption := ""
	if opts.AICaption {
		caption = fetchCaption(ctx, cfg, log, stats)
	}

	doc := report.Compose(report.Report{
		Languages:   languages,
		Stats:       stats,
		Events:      events,
		Followers:   followers,
		Stars:       stats.Stars,
		Caption:     caption,
		GeneratedAt: time.Now(),
	})

	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("%s has been updated successfully.\n", out)

	if !opts.SkipStore && cfg.StoreConfigured() {
		saveSnapshot(ctx, cfg, log, user, stats, followers, languages)
	}

	return nil
}

// fetchCaption returns an LLM caption or "" so the composer falls back
// to the fixed one.
func fetchCaption(ctx context.Context, cfg *config.Config, log *zap.Logger, stats models.StatsSummary) string {
	if cfg.LLMAPIKey == "" {
		log.Warn("--ai-caption requested but LLM_API_KEY not set, using fixed caption")
		return ""
	}

	caption, err := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel).Caption(ctx, stats)
	if err != nil {
		log.Warn("caption enrichment failed, using fixed caption", zap.Error(err))
		return ""
	}
	return caption
}

func saveSnapshot(ctx context.Context, cfg *config.Config, log *zap.Logger, user string, stats models.StatsSummary, followers int, languages []models.LanguageShare) {
	db, err := store.NewClient(ctx, cfg)
	if err != nil {
		log.Warn("snapshot store unavailable", zap.Error(err))
		return
	}
	defer func() { _ = db.Close(ctx) }()

	topLanguage := ""
	if len(languages) > 0 {
		topLanguage = languages[0].Name
	}

	snap := models.Snapshot{
		Username:      user,
		Commits:       stats.Commits,
		PullRequests:  stats.PullRequests,
		Issues:        stats.Issues,
		Stars:         stats.Stars,
		ReposOwned:    stats.ReposOwned,
		ContributedTo: stats.ContributedTo,
		Followers:     followers,
		TopLanguage:   topLanguage,
		GeneratedAt:   time.Now().UTC(),
	}
	if err := db.Save(ctx, snap); err != nil {
		log.Warn("saving snapshot failed", zap.Error(err))
		return
	}
	fmt.Println("Snapshot stored")
}
