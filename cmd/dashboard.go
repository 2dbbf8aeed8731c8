package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"status"},
	Short:   "Show today's date, the latest 1RM and zone check, and the goal achievement rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := app.Dashboard()

		if dashboardJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}

		printBoxedHeader("DASHBOARD")
		printMetric("Today", d.Today)
		if d.LatestOneRM != nil {
			r := d.LatestOneRM
			printMetric("Latest 1RM", fmt.Sprintf("%s %s (%s)", r.Exercise, formatRM(*r), utils.FormatLong(r.Date)))
		} else {
			printMetric("Latest 1RM", faint("none"))
		}
		if d.LatestZone != nil {
			z := d.LatestZone
			printMetric("Latest zone", fmt.Sprintf("%s at %d bpm (%s)", zoneColor(z.Zone)(z.Zone), z.HeartRate, utils.FormatLong(z.Date)))
		} else {
			printMetric("Latest zone", faint("none"))
		}
		printMetric("Records", d.Records)
		printMetric("Goal achievement", fmt.Sprintf("%d%%", d.GoalRate))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the dashboard as JSON")
}
