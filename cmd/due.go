package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vincentb/aurelie/internal/session"
	"github.com/vincentb/aurelie/internal/spacedrep"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List review items due for practice today",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = e.cfg.Session.Limit
		}

		svc := session.NewService(e.store.Repo(), e.log, session.Config{
			Policy: e.cfg.ReviewPolicy(),
			Levels: e.cfg.MasteryLevels(),
		})

		keys, shortfall, err := svc.SelectDue(cmd.Context(), e.learner, time.Now(), spacedrep.Filter{Topic: topic}, limit)
		if err != nil {
			return err
		}

		if len(keys) == 0 {
			fmt.Println("Nothing due for review.")
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		if shortfall > 0 {
			fmt.Printf("(%d slot(s) open for fresh content)\n", shortfall)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().String("topic", "", "Restrict the due set to one topic key")
	dueCmd.Flags().Int("limit", 0, "Maximum number of items (defaults to configured session limit)")
}
