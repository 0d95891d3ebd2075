// Package gridroute is a small toolkit for minimal-cost routing on 2D
// terrain grids where the direction you face matters.
//
// 🚀 What is inside?
//
//	gridgraph/     terrain Grid, Heading, text parsing, regions & reachability
//	cost/          transition cost models: TurnPenalty (Reindeer), Steps, Uniform
//	dijkstra/      Dijkstra over (cell, heading) states with lazy decrease-key
//	obstacles/     replay falling obstacles, re-solve, find the first blocking drop
//	cmd/gridroute/ command-line front end (maze, drops)
//
// ✨ Guarantees
//
//   - Non-negative costs only; models are validated before every search
//   - Deterministic results: equal-cost frontier entries pop in push order
//   - Grids are immutable; WithWalls derives modified copies for re-solves
//   - Searches share nothing, so they may run concurrently on one grid
//
// Quick ASCII example:
//
//	#####
//	#..E#
//	#S#.#
//	#####
//
// Facing East at S the wall ahead forces a quarter turn north (1001), then
// a quarter turn east (1001) and one more step (1), for a score of 2003.
// See dijkstra.ExampleSolveMaze for a runnable walkthrough.
//
//	go install github.com/katalvlaran/gridroute/cmd/gridroute@latest
package gridroute
