package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vincentb/aurelie/internal/session"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Enroll review items ahead of their first mistake",
	Long: `Seed reads a JSON array of {"key","topic","kind"} objects and enrolls
each key into the review schedule at the first ladder rung. Keys that are
already tracked keep their existing schedule.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		var keys []session.SeedKey
		if err := json.Unmarshal(data, &keys); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		svc := session.NewService(e.store.Repo(), e.log, session.Config{
			Policy: e.cfg.ReviewPolicy(),
			Levels: e.cfg.MasteryLevels(),
		})

		n, err := svc.Seed(cmd.Context(), e.learner, keys)
		if err != nil {
			return err
		}
		fmt.Printf("Seeded %d new item(s), %d already tracked.\n", n, len(keys)-n)
		return nil
	},
}
