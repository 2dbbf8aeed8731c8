package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export every record, zone check and goal to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "suren_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("Failed to create %s: %w", outputFile, err)
		}
		defer f.Close()

		if err := app.Export(f); err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Printf("✅ Data exported successfully to %s\n", outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dump-file>",
	Short: "Replace all stored data with the contents of a TOML dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		snap, err := app.Import(f)
		if err != nil {
			return fmt.Errorf("Failed to import dump: %w", err)
		}
		fmt.Printf("✅ Imported %d records, %d zone checks and %d goals\n", len(snap.History), len(snap.Zones), len(snap.Goals))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
