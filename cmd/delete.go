package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	deleteDate     string
	deleteExercise string
	deleteRM       float64
	deleteIndex    int
)

var deleteRecordCmd = &cobra.Command{
	Use:   "delete-record [id]",
	Short: "Delete a 1RM record by id, or every record matching --date, --exercise and --rm",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if !cmd.Flags().Changed("rm") {
				return fmt.Errorf("give a record id or --date, --exercise and --rm")
			}
			n, err := app.DeleteMatching(deleteDate, deleteExercise, deleteRM)
			if err != nil {
				return userError(err)
			}
			fmt.Printf("🗑️ Removed %d matching record(s)\n", n)
			return nil
		}

		removed, err := app.DeleteRecord(args[0])
		if err != nil {
			return userError(err)
		}
		if !removed {
			fmt.Printf("No record with id %s\n", args[0])
			return nil
		}
		fmt.Printf("🗑️ Record %s removed\n", args[0])
		return nil
	},
}

var deleteZoneCmd = &cobra.Command{
	Use:   "delete-zone [id]",
	Short: "Delete a zone record by id, or by its position in `suren zones` with --index",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			removed bool
			err     error
			target  string
		)
		if len(args) == 1 {
			target = args[0]
			removed, err = app.DeleteZone(target)
		} else {
			if deleteIndex < 1 {
				return fmt.Errorf("give a zone record id or --index")
			}
			target = "#" + strconv.Itoa(deleteIndex)
			removed, err = app.DeleteZoneAt(deleteIndex - 1)
		}
		if err != nil {
			return userError(err)
		}
		if !removed {
			fmt.Printf("No zone record %s\n", target)
			return nil
		}
		fmt.Printf("🗑️ Zone record %s removed\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteRecordCmd, deleteZoneCmd)
	deleteRecordCmd.Flags().StringVarP(&deleteDate, "date", "d", "", "Date of the records to remove (yyyy-mm-dd)")
	deleteRecordCmd.Flags().StringVarP(&deleteExercise, "exercise", "e", "", "Exercise of the records to remove")
	deleteRecordCmd.Flags().Float64Var(&deleteRM, "rm", 0, "Estimated 1RM of the records to remove")
	deleteZoneCmd.Flags().IntVarP(&deleteIndex, "index", "i", 0, "Number shown by suren zones (the same for every --window)")
}
