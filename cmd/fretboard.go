package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/fretboard"
	"github.com/jsphweid/fretwork/note"
	"github.com/spf13/cobra"
)

var (
	fretboardTuning string
	fretboardFrets  int
)

func init() {
	fretboardCmd.Flags().StringVar(&fretboardTuning, "tuning", "guitar", "guitar, ukulele, mandolin or comma separated open strings like D2,A2,D3,G3,B3,E4")
	fretboardCmd.Flags().IntVar(&fretboardFrets, "frets", constants.GetFrets(), "notes per string, open string included")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Prints a fretboard",
	Long:  `Prints the note at every fret of every string, highest string on top.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tuning, err := parseTuning(fretboardTuning)
		if err != nil {
			return err
		}
		fb, err := fretboard.New(tuning, fretboardFrets)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		rows := fb.Names()
		for i := len(rows) - 1; i >= 0; i-- {
			cells := make([]string, len(rows[i]))
			for j, name := range rows[i] {
				cells[j] = fmt.Sprintf("%-4s", name)
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
		}
		return nil
	},
}

// parseTuning takes a tuning name or a comma separated list of notes.
func parseTuning(s string) ([]note.Note, error) {
	if !strings.Contains(s, ",") {
		return fretboard.Tuning(s)
	}
	var names []string
	for _, name := range strings.Split(s, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	return fretboard.Notes(names...)
}
