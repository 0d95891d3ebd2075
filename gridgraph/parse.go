package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze in text form: '#' walls, '.' open cells, 'S' start and
// 'E' goal, one row per line. Blank lines are skipped and trailing '\r' is
// dropped. Any other rune yields ErrBadTerrain wrapped with its position.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Terrain
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]Terrain, 0, len(text))
		// Every rune before the first bad one is an ASCII terrain symbol,
		// so the byte offset equals the rune column.
		for col, ch := range text {
			t, ok := TerrainOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadTerrain, ch, line, col+1)
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. Intended for tests
// and package-level fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return g
}
