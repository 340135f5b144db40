package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/fretboard"
	"github.com/jsphweid/fretwork/interval"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the lookup tables",
	Long:  `Prints the pitch classes, interval names, scale and chord formulas, tunings and major keys.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(cmd.OutOrStdout())
	},
}

func report(w io.Writer) error {
	fmt.Fprintf(w, "pitch classes: %v\n", strings.Join(pitch.Classes(), " "))
	fmt.Fprintf(w, "sharp keys: %v\n", strings.Join(pitch.SharpKeys(), " "))
	fmt.Fprintf(w, "flat keys: %v\n", strings.Join(pitch.FlatKeys(), " "))

	fmt.Fprintln(w, "\nintervals:")
	for _, name := range interval.Names() {
		semitones, _ := interval.Semitones(name)
		shorthand, _ := interval.Shorthand(name)
		fmt.Fprintf(w, "  %-15s %-3s %v\n", name, shorthand, semitones)
	}

	fmt.Fprintln(w, "\nscales:")
	for _, t := range scale.Types() {
		f, _ := scale.Formula(t)
		fmt.Fprintf(w, "  %-17s %v\n", scale.DisplayName(t), f)
	}

	fmt.Fprintln(w, "\nchords:")
	for _, q := range chord.Qualities() {
		f, _ := chord.Formula(q)
		fmt.Fprintf(w, "  %-24s %v\n", q, f)
	}

	fmt.Fprintln(w, "\ntunings:")
	for _, name := range fretboard.TuningNames() {
		tuning, err := fretboard.Tuning(name)
		if err != nil {
			return err
		}
		names := make([]string, len(tuning))
		for i, n := range tuning {
			names[i] = n.Name
		}
		fmt.Fprintf(w, "  %-8s %v\n", name, strings.Join(names, " "))
	}

	fmt.Fprintln(w, "\nmajor keys:")
	for _, root := range scale.KeyRoots() {
		s, err := scale.MajorKey(root)
		if err != nil {
			return err
		}
		sig, err := pitch.KeySignature(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-3s %-6s %v\n", root, sig, strings.Join(s.Names(), " "))
	}
	return nil
}
