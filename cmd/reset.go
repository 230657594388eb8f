package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data for the learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("reset deletes all learner data; re-run with --yes to confirm")
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.store.Repo().ResetLearner(cmd.Context(), e.learner); err != nil {
			return err
		}
		fmt.Printf("Learner %q reset.\n", e.learner)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
