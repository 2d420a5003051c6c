package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/tilestar/core"
	"github.com/katalvlaran/tilestar/dijkstra"
)

// ExampleDijkstra computes shortest distances on a small triangle.
func ExampleDijkstra() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	fmt.Printf("prev[C]=%s\n", prev["C"])

	// Output:
	// dist[A]=0, dist[B]=1, dist[C]=3
	// prev[C]=B
}

// ExampleShortestCost stops at the goal of the graph.
func ExampleShortestCost() {
	g := core.NewGraph(core.WithGoal("C"))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	cost, found, _ := dijkstra.ShortestCost[core.VertexID](g, "A")
	fmt.Println(cost, found)

	// Output:
	// 3 true
}
