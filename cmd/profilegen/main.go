package main

import (
	"context"
	"fmt"
	"os"

	"github.com/m4ster-slave/profilegen/internal/config"
	"github.com/m4ster-slave/profilegen/internal/pipeline"
	"github.com/m4ster-slave/profilegen/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var debug bool

	root := &cobra.Command{
		Use:   "profilegen",
		Short: "GitHub profile → fixed-width ASCII README",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose diagnostics")

	root.AddCommand(generateCmd(&debug), historyCmd(), schemaCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func generateCmd(debug *bool) *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch profile data and write the README report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := newLogger(*debug)
			defer func() { _ = log.Sync() }()

			return pipeline.Run(context.Background(), cfg, log, opts)
		},
	}
	cmd.Flags().StringVar(&opts.User, "user", "", "Profile username (default from PROFILE_USER)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Output file (default from PROFILE_OUT)")
	cmd.Flags().BoolVar(&opts.AICaption, "ai-caption", false, "Generate the caption line with an LLM")
	cmd.Flags().BoolVar(&opts.SkipStore, "no-store", false, "Skip the snapshot write")
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored snapshots with run-over-run deltas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			if !cfg.StoreConfigured() {
				return fmt.Errorf("snapshot store not configured (set SURREAL_URL)")
			}

			db, err := store.NewClient(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(ctx) }()

			snaps, err := db.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println("No snapshots stored yet")
				return nil
			}

			for i, s := range snaps {
				line := fmt.Sprintf("%s  %-15s stars %d  followers %d  commits %d",
					s.GeneratedAt.Format("2006-01-02 15:04"), s.Username,
					s.Stars, s.Followers, s.Commits)
				if i+1 < len(snaps) {
					prev := snaps[i+1]
					line += fmt.Sprintf("  (%+d stars, %+d followers, %+d commits)",
						s.Stars-prev.Stars, s.Followers-prev.Followers, s.Commits-prev.Commits)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of snapshots")
	return cmd
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Initialize/update the SurrealDB schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			if !cfg.StoreConfigured() {
				return fmt.Errorf("snapshot store not configured (set SURREAL_URL)")
			}

			db, err := store.NewClient(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(ctx) }()

			if err := db.InitSchema(ctx); err != nil {
				return err
			}
			fmt.Println("Schema initialized")
			return nil
		},
	}
}
