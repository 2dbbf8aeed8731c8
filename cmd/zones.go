package cmd

import (
	"fmt"

	"github.com/misterclayt0n/suren/internal/analytics"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/spf13/cobra"
)

var zonesWindow string

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Display recorded heart-rate zone checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := models.ParseWindow(zonesWindow)
		if err != nil {
			return err
		}

		zones := app.Zones(window)
		if len(zones) == 0 {
			fmt.Println("No zone records yet. Use `suren zone` to add one.")
			return nil
		}

		// Numbers are positions in the full listing, the ones delete-zone --index takes.
		positions := zonePositions(app.Zones(models.WindowAll), zones)
		for i, z := range zones {
			fmt.Printf("%3d. %s  %3d bpm  age %d  %s %s\n",
				positions[i],
				utils.FormatLong(z.Date),
				z.HeartRate,
				z.Age,
				zoneColor(z.Zone)(z.Zone),
				faint(z.ID),
			)
		}

		if rate, ok := analytics.ZoneSuccessRate(zones); ok {
			fmt.Println()
			printMetric("In "+models.ZoneTarget, fmt.Sprintf("%d%%", rate))
		}
		return nil
	},
}

// zonePositions returns the 1-based position in all of every record in
// shown, matched by id.
func zonePositions(all, shown []models.ZoneRecord) []int {
	index := make(map[string]int, len(all))
	for i, z := range all {
		index[z.ID] = i + 1
	}
	out := make([]int, len(shown))
	for i, z := range shown {
		out[i] = index[z.ID]
	}
	return out
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.Flags().StringVarP(&zonesWindow, "window", "w", "all", "Time window: all, week or month")
}
