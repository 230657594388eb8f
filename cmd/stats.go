package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincentb/aurelie/internal/engagement"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show engagement, mastery and achievement statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		repo := e.store.Repo()

		state, err := repo.EngagementState(ctx, e.learner)
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n\n", e.learner)
		fmt.Printf("Streak:  %d day(s) (longest %d)\n", state.CurrentStreak, state.LongestStreak)
		freeze := "available"
		if !state.FreezeAvailable {
			freeze = "used this week"
		}
		fmt.Printf("Freeze:  %s\n", freeze)
		fmt.Printf("XP:      %d (level %d, %d to next)\n",
			state.TotalXP, state.Level(), state.Level()*engagement.XPPerLevel-state.TotalXP)

		masteries, err := repo.TopicMasteries(ctx, e.learner)
		if err != nil {
			return err
		}
		if len(masteries) > 0 {
			fmt.Println("\nTopics:")
			levels := e.cfg.MasteryLevels()
			for _, tm := range masteries {
				fmt.Printf("  %-24s %-11s %d/%d (%.0f%%)\n",
					tm.TopicKey, tm.Level(levels), tm.CorrectAttempts, tm.TotalAttempts, tm.Accuracy()*100)
			}
		}

		achievements, err := repo.Achievements(ctx, e.learner)
		if err != nil {
			return err
		}
		if len(achievements) > 0 {
			fmt.Println("\nAchievements:")
			for _, a := range achievements {
				fmt.Printf("  %-16s %s\n", a.Key, a.UnlockedAt.Format("2006-01-02"))
			}
		}

		patterns, err := repo.ActiveErrorPatterns(ctx, e.learner)
		if err != nil {
			return err
		}
		if len(patterns) > 0 {
			fmt.Println("\nRecurring mistakes:")
			for _, p := range patterns {
				fmt.Printf("  %s (%s): seen %d times\n", p.Pattern, p.Verb, p.Occurrences)
			}
		}

		sessions, err := repo.SessionResults(ctx, e.learner, 5)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				fmt.Printf("  %s  %d/%d correct, +%d XP\n",
					s.Date.Format("2006-01-02"), s.Correct, s.Exercises, s.XPAwarded)
			}
		}
		return nil
	},
}
