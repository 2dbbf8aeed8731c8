package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/spf13/cobra"
)

var insightJSON bool

// insightCmd prints every analytic: averages, goal progress, bests, trends and
// the coaching notes.
var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Show averages, goal progress, personal bests and trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := app.Insight()

		if insightJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(in)
		}

		if len(in.Averages) == 0 {
			fmt.Println("No records yet. Use `suren calc` to add one.")
			return nil
		}

		printBoxedHeader("INSIGHT")
		printMetric("Goal achievement", fmt.Sprintf("%d%%", in.GoalRate))
		if in.Best != nil {
			printMetric("Best lift", fmt.Sprintf("%s %s (%s)", in.Best.Exercise, formatRM(*in.Best), in.Best.Date))
		}
		if in.HasZoneRate {
			printMetric("Sessions in "+models.ZoneTarget, fmt.Sprintf("%d%%", in.ZoneRate))
		}
		fmt.Println()

		printSection("Average 1RM per exercise:")
		top := 0.0
		for _, v := range in.Charts.Averages.Data {
			if v > top {
				top = v
			}
		}
		for i, label := range in.Charts.Averages.Labels {
			v := in.Charts.Averages.Data[i]
			fmt.Printf("  %-16s %-*s %.1f\n", label, barWidth, bar(v, top), v)
		}
		fmt.Println()

		printSection("Goal progress:")
		for _, p := range in.Progress {
			if !p.HasGoal {
				fmt.Printf("  %-16s %s\n", p.Exercise, faint("no goal"))
				continue
			}
			fmt.Printf("  %-16s %-*s %d%% (%d/%d at %.1f)\n", p.Exercise, barWidth, bar(float64(p.Progress), 100), p.Progress, p.Achieved, p.Total, p.Goal)
		}
		fmt.Println()

		printSection("Personal bests:")
		for _, b := range in.Bests {
			fmt.Printf("  • %s: %s on %s\n", magentaBold(b.Exercise), formatRM(b.Record), b.Record.Date)
		}
		fmt.Println()

		printSection("Trends:")
		for _, n := range in.Notes {
			fmt.Printf("  %s %s\n", trendColor(n.Trend)(fmt.Sprintf("[%s]", n.Trend)), n.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)
	insightCmd.Flags().BoolVar(&insightJSON, "json", false, "Print the insight, chart series included, as JSON")
}
