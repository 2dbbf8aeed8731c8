package cmd

import (
	"fmt"

	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyWindow   string
	historyExercise string
)

// historyCmd lists 1RM estimates grouped by day, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display recorded 1RM estimates, optionally limited to the last week or month",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := models.ParseWindow(historyWindow)
		if err != nil {
			return err
		}

		records := app.History(window)
		if historyExercise != "" {
			records = filterExercise(records, historyExercise)
		}
		if len(records) == 0 {
			fmt.Println("No records yet. Use `suren calc` to add one.")
			return nil
		}

		// Records are newest first, so days come out in order.
		day := ""
		for _, r := range records {
			if r.Date != day {
				if day != "" {
					fmt.Println()
				}
				day = r.Date
				fmt.Printf("Date: %s\n", utils.FormatLong(day))
			}
			fmt.Printf("  %s %s | %g %s × %d %s\n",
				magentaBold(r.Exercise),
				yellowBold(formatRM(r)),
				r.Weight, r.Unit, r.Reps,
				faint(r.ID),
			)
		}
		return nil
	},
}

func filterExercise(records []models.ExerciseRecord, name string) []models.ExerciseRecord {
	want := exercise.Normalize(name)
	var filtered []models.ExerciseRecord
	for _, r := range records {
		if exercise.Normalize(r.Exercise) == want {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyWindow, "window", "w", "all", "Time window: all, week or month")
	historyCmd.Flags().StringVarP(&historyExercise, "exercise", "e", "", "Only show one exercise")
}
