// Command gridroute solves direction-aware grid routing puzzles from text
// files.
//
//	gridroute maze FILE      minimal score through a '#', '.', 'S', 'E' maze
//	gridroute drops FILE     route length after a drop prefix and first blocking drop
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel string
	verbose  int
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:   "gridroute",
		Short: "Minimal-cost routes on 2D grids where turning costs extra",
		Long: `gridroute finds minimal-cost routes on rectangular grids.

Moves are priced by heading: stepping straight ahead, turning a quarter and
reversing can each cost differently. The drops command replays falling
obstacles over an open grid and reports when the exit is sealed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "warn", "Log level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().CountVarP(&gf.verbose, "verbose", "v", "Increase search log verbosity (repeatable)")

	newLog := func() (logr.Logger, error) { return newLogger(logOut, gf) }
	rootCmd.AddCommand(newMazeCmd(newLog), newDropsCmd(newLog))

	return rootCmd
}

// newLogger builds a zerolog console logger on w and wraps it as a logr.Logger.
// Each -v raises the logr verbosity by one and lowers the zerolog level to match.
func newLogger(w io.Writer, gf globalFlags) (logr.Logger, error) {
	lvl, err := zerolog.ParseLevel(gf.logLevel)
	if err != nil {
		return logr.Discard(), fmt.Errorf("--log-level: %w", err)
	}
	switch {
	case gf.verbose >= 2 && lvl > zerolog.TraceLevel:
		lvl = zerolog.TraceLevel
	case gf.verbose == 1 && lvl > zerolog.DebugLevel:
		lvl = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(1 - int(lvl))

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	zl := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return zerologr.New(&zl).WithName("gridroute"), nil
}
