package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/note"
	"github.com/spf13/cobra"
)

func init() {
	chordCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <quality>",
	Short: "Builds a chord",
	Long:  `Builds a chord such as "C4 major" or "G3 dominant seventh" and prints its notes and MIDI key.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.New(args[0])
		if err != nil {
			return err
		}
		q, err := chord.ParseQuality(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		c, err := chord.FromQuality(root, q)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%v %v\n", c.Root.Name, c.Quality)
		fmt.Fprintf(w, "notes: %v\n", strings.Join(c.Names(), " "))
		fmt.Fprintf(w, "key: %v\n", c.Key())
		return nil
	},
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note>...",
	Short: "Names the chords formed by some notes",
	Long:  `Names every chord whose pitch classes are exactly those of the given notes. Readings rooted on the lowest note come first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes := make([]note.Note, 0, len(args))
		for _, arg := range args {
			n, err := note.New(arg)
			if err != nil {
				return err
			}
			notes = append(notes, n)
		}

		w := cmd.OutOrStdout()
		matches := chord.Identify(notes)
		if len(matches) == 0 {
			fmt.Fprintln(w, "no match")
			return nil
		}
		for _, m := range matches {
			if m.RootInBass {
				fmt.Fprintf(w, "%v\n", m.Name)
			} else {
				fmt.Fprintf(w, "%v (inversion)\n", m.Name)
			}
		}
		return nil
	},
}
