package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/obstacles"
)

type dropsFlags struct {
	rows     int
	cols     int
	prefix   int
	parallel int
}

func newDropsCmd(newLog func() (logr.Logger, error)) *cobra.Command {
	var df dropsFlags

	cmd := &cobra.Command{
		Use:   "drops FILE",
		Short: "Replay falling obstacles over an open grid",
		Long: `Reads "x,y" drops, one per line (x = column, y = row), onto an open
rows×cols grid and routes from the top-left to the bottom-right corner.

Prints the minimal number of steps after the first --prefix drops, then the
first drop after which the exit can no longer be reached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLog()
			if err != nil {
				return err
			}
			return runDrops(cmd, args[0], df, log)
		},
	}
	cmd.Flags().IntVar(&df.rows, "rows", 71, "Grid height")
	cmd.Flags().IntVar(&df.cols, "cols", 71, "Grid width")
	cmd.Flags().IntVar(&df.prefix, "prefix", 1024, "Drops landed before the step count is taken")
	cmd.Flags().IntVarP(&df.parallel, "parallel", "p", 1, "Concurrent probes when searching for the blocking drop")

	return cmd
}

func runDrops(cmd *cobra.Command, file string, df dropsFlags, log logr.Logger) error {
	g, err := gridgraph.NewOpen(df.rows, df.cols)
	if err != nil {
		return fmt.Errorf("--rows/--cols: %w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	drops, err := obstacles.ParseDrops(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	log.V(1).Info("drops loaded", "file", file, "count", len(drops))

	start := gridgraph.Cell{}
	goal := gridgraph.Cell{Row: df.rows - 1, Col: df.cols - 1}
	s, err := obstacles.NewScanner(g, start, goal, drops,
		obstacles.WithWorkers(df.parallel),
		obstacles.WithLogger(log),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prefix := min(df.prefix, s.Len())
	res, err := s.CostAfter(cmd.Context(), prefix)
	if err != nil {
		return err
	}
	if res.Reached {
		fmt.Fprintf(out, "steps after %d drops: %d\n", prefix, res.Cost)
	} else {
		fmt.Fprintf(out, "steps after %d drops: unreachable\n", prefix)
	}

	b, ok, err := s.FirstBlocking(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "first blocking drop: none")
		return nil
	}
	fmt.Fprintf(out, "first blocking drop: %s\n", obstacles.Format(b.Drop))

	return nil
}
