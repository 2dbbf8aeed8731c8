package cmd

import (
	"fmt"

	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	zoneAge       string
	zoneHeartRate string
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Classify a heart rate into a training zone and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := app.CalculateZone(tracker.ZoneInput{Age: zoneAge, HeartRate: zoneHeartRate})
		if err != nil {
			return userError(err)
		}

		c := res.Classification
		printBoxedHeader("HEART RATE ZONE")
		printMetric("Age", res.Record.Age)
		printMetric("Max heart rate", fmt.Sprintf("%d bpm", c.MaxHR))
		printMetric("Heart rate", fmt.Sprintf("%d bpm", res.Record.HeartRate))
		printMetric("Zone", zoneColor(c.Zone)(c.Zone))
		if target, ok := c.Range(models.ZoneTarget); ok {
			printMetric("Target", fmt.Sprintf("%s, %.0f – %.0f bpm", target.Name, target.Min, target.Max))
		}
		fmt.Println()

		printSection("Zones:")
		for _, r := range c.Ranges {
			line := fmt.Sprintf("  %s: %.1f – %.1f bpm", r.Name, r.Min, r.Max)
			if r.Name == c.Zone {
				line = zoneColor(c.Zone)(line + "  ◀")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zoneCmd)
	zoneCmd.Flags().StringVarP(&zoneAge, "age", "a", "", "Your age (defaults to the last one entered)")
	zoneCmd.Flags().StringVar(&zoneHeartRate, "hr", "", "Heart rate in bpm")
}
