package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

type mazeFlags struct {
	move    int64
	turn    int64
	reverse int64
	heading string
	path    bool
}

func newMazeCmd(newLog func() (logr.Logger, error)) *cobra.Command {
	var mf mazeFlags
	def := cost.Reindeer()

	cmd := &cobra.Command{
		Use:   "maze FILE",
		Short: "Print the minimal score from S to E",
		Long: `Reads a maze of '#' walls, '.' open cells, one 'S' and one 'E', and prints
the minimal score from S to E, or "unreachable".

Each step costs --move; a quarter turn adds --turn, a reversal adds --reverse.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLog()
			if err != nil {
				return err
			}
			return runMaze(cmd, args[0], mf, log)
		},
	}
	cmd.Flags().Int64Var(&mf.move, "move", def.Move, "Cost of one step")
	cmd.Flags().Int64Var(&mf.turn, "turn", def.Quarter, "Extra cost of a 90° turn")
	cmd.Flags().Int64Var(&mf.reverse, "reverse", def.Reverse, "Extra cost of a 180° turn")
	cmd.Flags().StringVar(&mf.heading, "heading", "east", "Initial heading: north|east|south|west")
	cmd.Flags().BoolVar(&mf.path, "path", false, "Also draw one optimal route")

	return cmd
}

func runMaze(cmd *cobra.Command, file string, mf mazeFlags, log logr.Logger) error {
	h, err := gridgraph.ParseHeading(mf.heading)
	if err != nil {
		return fmt.Errorf("--heading: %w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := gridgraph.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	log.V(1).Info("maze loaded", "file", file, "rows", g.Rows, "cols", g.Cols)

	model := cost.TurnPenalty{Move: mf.move, Quarter: mf.turn, Reverse: mf.reverse}
	opts := []dijkstra.Option{
		dijkstra.WithContext(cmd.Context()),
		dijkstra.WithStartHeading(h),
		dijkstra.WithLogger(log),
	}
	if mf.path {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	res, err := dijkstra.SolveMaze(g, model, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Reached {
		fmt.Fprintln(out, "unreachable")
		return nil
	}
	fmt.Fprintln(out, res.Cost)
	if mf.path {
		path, err := res.Path()
		if err != nil {
			return err
		}
		fmt.Fprint(out, drawPath(g, path))
	}

	return nil
}

// drawPath renders g with every interior path cell replaced by an arrow
// pointing the way the route faces when it enters that cell.
func drawPath(g *gridgraph.Grid, path []dijkstra.State) string {
	lines := strings.Split(strings.TrimRight(g.String(), "\n"), "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	arrows := [gridgraph.NumHeadings]byte{'^', '>', 'v', '<'}
	for _, s := range path {
		if g.At(s.Cell) != gridgraph.Open {
			continue
		}
		rows[s.Cell.Row][s.Cell.Col] = arrows[s.Heading]
	}

	var b strings.Builder
	for _, r := range rows {
		b.Write(r)
		b.WriteByte('\n')
	}

	return b.String()
}
