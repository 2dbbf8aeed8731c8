package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/misterclayt0n/suren/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	calcExercise string
	calcWeight   string
	calcReps     string
	calcUnit     string
)

// calcCmd estimates a 1RM from a working set and records it.
var calcCmd = &cobra.Command{
	Use:     "calc [exercise]",
	Aliases: []string{"1rm"},
	Short:   "Estimate a one rep max with the Epley formula and save it to history",
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := calcExercise
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		unit := calcUnit
		if unit == "" {
			unit = cfg.Defaults.Unit
		}

		res, err := app.Calculate1RM(tracker.OneRMInput{
			Exercise: name,
			Weight:   calcWeight,
			Reps:     calcReps,
			Unit:     unit,
		})
		if err != nil {
			return userError(err)
		}

		rec := res.Record
		fmt.Printf("✅ %s: %s (%g %s × %d)\n", magentaBold(rec.Exercise), yellowBold(formatRM(rec)), rec.Weight, rec.Unit, rec.Reps)
		if !exercise.IsKnown(rec.Exercise) {
			fmt.Println(faint("(custom exercise, see `suren exercises` for the standard names)"))
		}
		if res.HasGoal {
			if res.GoalReached {
				fmt.Println(color.GreenString("🎯 Goal of %.1f reached!", res.Goal))
			} else {
				fmt.Printf("🎯 %.1f to go for your goal of %.1f\n", res.Goal-rec.RM, res.Goal)
			}
		}
		fmt.Println(faint("id " + rec.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcExercise, "exercise", "e", "", "Exercise name (an alias like 스쿼트 works too)")
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "w", "", "Weight lifted")
	calcCmd.Flags().StringVarP(&calcReps, "reps", "r", "", "Repetitions performed")
	calcCmd.Flags().StringVarP(&calcUnit, "unit", "u", "", "Unit of the result: kg or lb (default from config)")
}
