// Package obstacles answers routing questions on a grid that gains walls
// one drop at a time.
//
// What:
//
//   - ParseDrops reads an ordered "x,y" drop list (x = column, y = row);
//     every malformed line is reported at once.
//   - Scanner pairs a base grid, a start, a goal and the drop list.
//   - Scanner.CostAfter(n) solves the route after the first n drops.
//   - Scanner.FirstBlocking finds the first drop that cuts the goal off.
//
// How:
//
//   - Grids are never mutated: every prefix is materialized with
//     gridgraph.Grid.WithWalls, so probes can run side by side.
//   - The sequential scan keeps the current best path and re-solves only
//     when a drop lands on it.
//   - With WithWorkers(n > 1) the prefix length is bisected instead; each
//     round checks up to n prefixes concurrently through an errgroup, using
//     gridgraph.Grid.Connected as the reachability probe.
//
// Errors:
//
//   - ErrBadDrop, ErrDropOutOfBounds: input problems, aggregated with multierr.
//   - ErrEndpoint: start or goal is not an open cell of the base grid.
//   - ErrUnreachable: the goal is cut off before any drop.
//   - ErrBadPrefix, ErrBadWorkers: invalid arguments.
//   - context errors when the caller's context ends.
package obstacles
