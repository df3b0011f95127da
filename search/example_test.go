package search_test

import (
	"fmt"

	"github.com/katalvlaran/waterways/gridgraph"
	"github.com/katalvlaran/waterways/search"
)

// ExampleFindRoute routes a ship across open water. Greedy best-first
// ordering heads straight for the goal along the diagonal.
func ExampleFindRoute() {
	g, _ := gridgraph.FromStrings([]string{
		"WWW",
		"WWW",
		"WWW",
	})
	path, err := search.FindRoute(g, gridgraph.Pos(0, 0), gridgraph.Pos(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// 0,0 1,1 2,2
}

// ExampleSameComponent asks whether two land cells belong to one island.
func ExampleSameComponent() {
	g, _ := gridgraph.FromStrings([]string{
		"LLW",
		"WLW",
		"WWL",
	})
	a, _ := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(1, 1))
	b, _ := search.SameComponent(g, gridgraph.Pos(0, 0), gridgraph.Pos(2, 2))
	fmt.Println(a, b)
	// Output:
	// true false
}

// ExampleTraceBoundary walks the water ring around a one-cell island.
func ExampleTraceBoundary() {
	g, _ := gridgraph.FromStrings([]string{
		"WWWWW",
		"WWWWW",
		"WWLWW",
		"WWWWW",
		"WWWWW",
	})
	ring, err := search.TraceBoundary(g, gridgraph.Pos(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(search.Path(ring))
	// Output:
	// 1,2 1,1 1,3 2,1 2,3 3,1 3,2 3,3
}
