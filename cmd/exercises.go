package cmd

import (
	"fmt"
	"sort"

	"github.com/misterclayt0n/suren/internal/exercise"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:         "exercises",
	Short:       "List the known exercises and the aliases that map to them",
	Annotations: map[string]string{offlineAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		byCanonical := make(map[string][]string)
		for alias, canonical := range exercise.Aliases() {
			byCanonical[canonical] = append(byCanonical[canonical], alias)
		}

		printBoxedHeader("EXERCISES")
		for _, name := range exercise.Known {
			aliases := byCanonical[name]
			sort.Strings(aliases)
			fmt.Printf("  • %s", magentaBold(name))
			if len(aliases) > 0 {
				fmt.Printf(" %s", faint(fmt.Sprint(aliases)))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}
