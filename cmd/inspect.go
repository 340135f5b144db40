package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fretwork/note"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/spf13/cobra"
)

var inspectLenient bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectLenient, "lenient", false, "log bad names and print the invalid placeholder instead of failing")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <note>",
	Short: "Inspects a note",
	Long:  `Prints the pitch class, octave, frequency, enharmonic spelling and MIDI key of a note such as C#4.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectLenient {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
			printNote(cmd.OutOrStdout(), note.Lenient(args[0], log))
			return nil
		}

		n, err := note.New(args[0])
		if err != nil {
			return err
		}
		printNote(cmd.OutOrStdout(), n)
		return nil
	},
}

func printNote(w io.Writer, n note.Note) {
	fmt.Fprintf(w, "name: %v\n", n.Name)
	fmt.Fprintf(w, "pitch class: %v\n", n.PitchClass)
	fmt.Fprintf(w, "accidental: %v\n", n.Accidental)
	fmt.Fprintf(w, "octave: %v\n", n.Octave)
	fmt.Fprintf(w, "index: %v\n", n.Index)
	fmt.Fprintf(w, "freq: %.2f\n", n.Freq)
	if n.EnharmonicNote != nil {
		fmt.Fprintf(w, "enharmonic: %v\n", n.EnharmonicNote.Name)
	}
	if key, ok := n.MIDIKey(); ok {
		fmt.Fprintf(w, "midi key: %v\n", key)
	}
	if sig, err := pitch.KeySignature(n.Spelling()); err == nil {
		fmt.Fprintf(w, "key signature: %v\n", sig)
	}
}
