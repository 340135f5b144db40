package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretwork/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(nearestCmd)
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <freq>",
	Short: "Names the note closest to a frequency",
	Long:  `Names the equal-tempered note closest to a frequency in Hz (A4 = 440) and how many cents off it is.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		freq, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		n, cents, err := note.Nearest(freq)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %+.2f cents\n", n.Name, cents)
		return nil
	},
}
