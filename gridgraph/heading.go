package gridgraph

import (
	"fmt"
	"strings"
)

// Heading is one of the four compass orientations. The constants are in
// clockwise order, so quarter-turn arithmetic is done modulo 4.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// NumHeadings is the size of the Heading enumeration.
const NumHeadings = 4

// Headings lists every Heading in clockwise order starting at North.
var Headings = [NumHeadings]Heading{North, East, South, West}

var headingDeltas = [NumHeadings]Delta{
	North: {DRow: -1, DCol: 0},
	East:  {DRow: 0, DCol: 1},
	South: {DRow: 1, DCol: 0},
	West:  {DRow: 0, DCol: -1},
}

var headingNames = [NumHeadings]string{"north", "east", "south", "west"}

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool { return h < NumHeadings }

// Delta returns the unit move pointing in direction h.
func (h Heading) Delta() Delta {
	return headingDeltas[h%NumHeadings]
}

// Rotate returns h turned clockwise by the given number of quarter turns.
// Negative values turn counter-clockwise.
func (h Heading) Rotate(quarters int) Heading {
	q := (int(h) + quarters) % NumHeadings
	if q < 0 {
		q += NumHeadings
	}

	return Heading(q)
}

// String returns the lower-case compass name of h.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}

	return headingNames[h]
}

// HeadingOf returns the Heading whose unit move equals d.
// The second result is false for anything but the four axis deltas.
func HeadingOf(d Delta) (Heading, bool) {
	for _, h := range Headings {
		if headingDeltas[h] == d {
			return h, true
		}
	}

	return 0, false
}

// ParseHeading accepts a compass name ("north", "e", "West", ...).
func ParseHeading(s string) (Heading, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, h := range Headings {
		name := headingNames[h]
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return h, nil
		}
	}

	return 0, fmt.Errorf("gridgraph: unknown heading %q", s)
}
