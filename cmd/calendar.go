package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to list what was recorded on each marked day.
var details bool

// calendarCmd prints a month grid. Days with a 1RM estimate, a zone check or
// both are colored, and a legend is printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of the days with recorded lifts and zone checks",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now().UTC()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		lifts := make(map[int][]models.ExerciseRecord)
		for _, r := range app.History(models.WindowAll) {
			if day, ok := dayInMonth(r.Date, year, month); ok {
				lifts[day] = append(lifts[day], r)
			}
		}
		zones := make(map[int][]models.ZoneRecord)
		for _, z := range app.Zones(models.WindowAll) {
			if day, ok := dayInMonth(z.Date, year, month); ok {
				zones[day] = append(zones[day], z)
			}
		}

		liftColor := color.New(color.FgGreen).SprintFunc()
		cardioColor := color.New(color.FgCyan).SprintFunc()
		bothColor := color.New(color.FgMagenta, color.Bold).SprintFunc()

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Weekday of the first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			_, lifted := lifts[day]
			_, cardio := zones[day]
			switch {
			case lifted && cardio:
				dayStr = bothColor(dayStr)
			case lifted:
				dayStr = liftColor(dayStr)
			case cardio:
				dayStr = cardioColor(dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: 1RM estimate\n", liftColor("██"))
		fmt.Printf("  %s: zone check\n", cardioColor("██"))
		fmt.Printf("  %s: both\n", bothColor("██"))

		if details {
			days := make(map[int]bool)
			for d := range lifts {
				days[d] = true
			}
			for d := range zones {
				days[d] = true
			}
			sorted := make([]int, 0, len(days))
			for d := range days {
				sorted = append(sorted, d)
			}
			sort.Ints(sorted)

			fmt.Println("\nDetails:")
			for _, day := range sorted {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, r := range lifts[day] {
					fmt.Printf("  %s %s\n", r.Exercise, formatRM(r))
				}
				for _, z := range zones[day] {
					fmt.Printf("  %d bpm, %s\n", z.HeartRate, z.Zone)
				}
			}
		}

		return nil
	},
}

func dayInMonth(date string, year int, month time.Month) (int, bool) {
	t, err := utils.ParseDate(date)
	if err != nil || t.Year() != year || t.Month() != month {
		return 0, false
	}
	return t.Day(), true
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "List what was recorded on each marked day")
}
