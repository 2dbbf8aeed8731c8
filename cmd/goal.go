package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage target 1RMs per exercise",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <exercise> <target>",
	Short: "Set the target 1RM for an exercise",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args[:len(args)-1], " ")
		canonical, goal, err := app.SaveGoal(name, args[len(args)-1])
		if err != nil {
			return userError(err)
		}
		fmt.Printf("✅ Goal for %s set to %.1f\n", magentaBold(canonical), goal)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <exercise>",
	Aliases: []string{"rm"},
	Short:   "Remove the goal of an exercise",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		if err := app.DeleteGoal(name); err != nil {
			return userError(err)
		}
		fmt.Printf("🗑️ Goal for %s removed\n", magentaBold(exercise.Normalize(name)))
		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:     "show [exercise]",
	Aliases: []string{"ls"},
	Short:   "Show one goal, or every goal when no exercise is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			name := strings.Join(args, " ")
			goal, ok := app.Goal(name)
			if !ok {
				fmt.Printf("No goal set for %s\n", exercise.Normalize(name))
				return nil
			}
			printMetric(exercise.Normalize(name), fmt.Sprintf("%.1f", goal))
			return nil
		}

		goals := app.Goals()
		if len(goals) == 0 {
			fmt.Println("No goals set. Use `suren goal set <exercise> <target>`.")
			return nil
		}
		printBoxedHeader("GOALS")
		for _, name := range sortedGoalNames(goals) {
			printMetric(name, fmt.Sprintf("%.1f", goals[name]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalDeleteCmd, goalShowCmd)
}
