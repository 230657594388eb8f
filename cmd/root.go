package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vincentb/aurelie/internal/config"
	"github.com/vincentb/aurelie/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aurelie",
	Short: "Spaced-repetition scheduling engine for English practice",
	Long:  "Aurelie is the scheduling, streak and mastery engine behind a single-learner English practice app.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AURELIE_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides configured learner)")

	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env holds everything a subcommand needs after setup.
type env struct {
	cfg     *config.Config
	log     *logrus.Logger
	store   *store.Store
	learner string
}

func (e *env) close() {
	e.store.Close()
}

// setup loads config, builds the logger and opens the store, honoring the
// --db and --learner flag overrides.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath := cfg.Database.Path
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	st, err := store.Open(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	learner := cfg.Learner
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		learner = l
	}

	return &env{cfg: cfg, log: log, store: st, learner: learner}, nil
}
