// Package gridgraph treats a 2D terrain map as the implicit graph walked by
// the directional shortest-path engine.
//
// What:
//
//   - Grid wraps a rectangular terrain array (Open, Wall, Start, Goal).
//   - Heading is a closed enumeration of the four compass orientations, each
//     paired with its unit Delta.
//   - Neighbor answers bounds-checked single-step queries; Walkable filters walls.
//   - Regions / Connected give cost-free reachability between cells.
//   - Parse / String convert to and from the '#', '.', 'S', 'E' text format.
//
// Why:
//
//   - The search engine needs a read-only model it can share across many
//     independent searches, including concurrent ones.
//   - Obstacle-driven callers need a cheap copy-before-mutate step (WithWalls)
//     instead of mutating a grid that another search might still be reading.
//
// Complexity:
//
//   - NewGrid, WithWalls, Parse: O(R×C) time and memory.
//   - InBounds, At, Neighbor:    O(1).
//   - Regions, Connected:        O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadTerrain: maze text contains an unknown symbol.
//   - ErrOutOfBounds: WithWalls was given a cell outside the grid.
package gridgraph
