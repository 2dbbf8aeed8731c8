package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/misterclayt0n/suren/internal/models"
	"github.com/misterclayt0n/suren/internal/validation"
)

const barWidth = 24

var (
	yellowBold  = color.New(color.FgYellow, color.Bold).SprintFunc()
	greenBold   = color.New(color.FgGreen, color.Bold).SprintFunc()
	magentaBold = color.New(color.FgMagenta, color.Bold).SprintFunc()
	faint       = color.New(color.Faint).SprintFunc()
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// centerText pads s on both sides to width runes.
func centerText(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func printSection(title string) {
	fmt.Println(greenBold(title))
}

// bar renders value as a horizontal bar; scale fills barWidth.
func bar(value, scale float64) string {
	if scale <= 0 || value <= 0 {
		return ""
	}
	n := int(value / scale * barWidth)
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n)
}

func trendColor(t models.Trend) func(a ...interface{}) string {
	switch t {
	case models.TrendProgress:
		return color.New(color.FgGreen).SprintFunc()
	case models.TrendRegressing:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgBlue).SprintFunc()
	}
}

func zoneColor(zone string) func(a ...interface{}) string {
	switch zone {
	case models.ZoneTarget:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	case models.ZoneOutOfRange:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgYellow).SprintFunc()
	}
}

func formatRM(rec models.ExerciseRecord) string {
	return fmt.Sprintf("%.1f %s", rec.RM, rec.Unit)
}

// userError turns validation failures into a plain message for the terminal.
func userError(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return fmt.Errorf("invalid %s: %s", verr.Field, verr.Message)
	}
	return err
}

func sortedGoalNames(goals models.GoalMap) []string {
	names := make([]string, 0, len(goals))
	for name := range goals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
