package obstacles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// ParseDrops reads one drop per line in "x,y" form, x being the column and
// y the row. Blank lines and surrounding spaces are ignored. Every malformed
// line is reported, combined into one error wrapping ErrBadDrop.
func ParseDrops(r io.Reader) ([]gridgraph.Cell, error) {
	var (
		drops []gridgraph.Cell
		errs  error
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := parseDrop(text)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		drops = append(drops, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}

	return drops, nil
}

// ParseDropsString is ParseDrops over a string.
func ParseDropsString(s string) ([]gridgraph.Cell, error) {
	return ParseDrops(strings.NewReader(s))
}

func parseDrop(text string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadDrop, text)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", ErrBadDrop, text)
	}

	return gridgraph.Cell{Row: y, Col: x}, nil
}

// Format renders c in the "x,y" drop notation.
func Format(c gridgraph.Cell) string {
	return strconv.Itoa(c.Col) + "," + strconv.Itoa(c.Row)
}

// CheckDrops reports every drop that falls outside g, combined into one
// error wrapping ErrDropOutOfBounds.
func CheckDrops(g *gridgraph.Grid, drops []gridgraph.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	var errs error
	for i, c := range drops {
		if !g.InBounds(c) {
			errs = multierr.Append(errs, fmt.Errorf("%w: #%d %s in %dx%d grid", ErrDropOutOfBounds, i, Format(c), g.Rows, g.Cols))
		}
	}

	return errs
}
