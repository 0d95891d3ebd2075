package obstacles_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/obstacles"
)

// ExampleScanner walks the 7×7 sample: the shortest route after twelve
// drops, then the first drop that seals the exit.
func ExampleScanner() {
	g, _ := gridgraph.NewOpen(7, 7)
	drops, err := obstacles.ParseDropsString(smallDrops)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, drops)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := s.CostAfter(context.Background(), 12)
	fmt.Println("steps:", res.Cost)

	b, ok, _ := s.FirstBlocking(context.Background())
	fmt.Println("blocked:", ok, obstacles.Format(b.Drop))
	// Output:
	// steps: 22
	// blocked: true 6,1
}

// ExampleScanner_parallel runs the same search as concurrent bisection.
func ExampleScanner_parallel() {
	g, _ := gridgraph.NewOpen(7, 7)
	drops, _ := obstacles.ParseDropsString(smallDrops)
	s, _ := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, drops,
		obstacles.WithWorkers(4))

	b, _, _ := s.FirstBlocking(context.Background())
	fmt.Println(b)
	// Output: #20 6,1
}
