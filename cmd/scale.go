package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <type>",
	Short: "Builds a scale",
	Long:  `Builds a scale such as "C4 major" or "A3 harmonic minor" and prints its notes and intervals.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.New(args[0])
		if err != nil {
			return err
		}
		t, err := scale.ParseType(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		s, err := scale.New(root, t)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%v %v\n", s.Root.Name, s.Name)
		fmt.Fprintf(w, "notes: %v\n", strings.Join(s.Names(), " "))
		fmt.Fprintf(w, "intervals: %v\n", strings.Join(s.Shorthands(), " "))
		fmt.Fprintf(w, "sharps: %v flats: %v\n", s.Sharps(), s.Flats())
		return nil
	},
}
