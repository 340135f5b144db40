package cmd

import (
	"fmt"

	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/note"
	"github.com/spf13/cobra"
)

var (
	intervalDown  bool
	intervalFlats bool
)

func init() {
	intervalCmd.Flags().BoolVar(&intervalDown, "down", false, "move down from the root")
	intervalCmd.Flags().BoolVar(&intervalFlats, "flats", false, "spell the result with flats")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <root> <distance>",
	Short: "Applies an interval to a note",
	Long: `Applies an interval to a note. The distance is a semitone count (4),
a shorthand (M3) or a name ("major 3rd").`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.New(args[0])
		if err != nil {
			return err
		}
		distance, err := interval.Parse(args[1])
		if err != nil {
			return err
		}
		dir := interval.Up
		if intervalDown {
			dir = interval.Down
		}

		iv, err := interval.New(root, distance, dir, intervalFlats)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %v (%v) %v = %v\n", iv.Root.Name, iv.Name, iv.Shorthand, iv.Direction, iv.Note.Name)
		return nil
	},
}
