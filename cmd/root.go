package cmd

import (
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "fretwork",
	Short:         "Notes, intervals, scales, chords and fretboards",
	Long:          `fretwork works out note frequencies, intervals, scales, chords and fretboard layouts from scientific pitch names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func newLogger() (*zap.Logger, error) {
	return logger.New(logLevel)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
