package rpq_test

import (
	"fmt"

	"github.com/SmirnovOleg/formal-languages/automaton"
	"github.com/SmirnovOleg/formal-languages/lgraph"
	"github.com/SmirnovOleg/formal-languages/rpq"
)

// ExampleSolve finds every (u, v) pair reachable via the regular
// constraint "a b" over a small cyclic graph.
func ExampleSolve() {
	g, _ := lgraph.FromText([]string{"0 a 1", "1 b 2", "2 a 0"})
	constraint, _ := automaton.BuildFromRegex("a b")

	result, _ := rpq.Solve(g, constraint, rpq.NewQuery())
	for p := range result {
		fmt.Printf("%d->%d\n", p.Row, p.Col)
	}

	// Output:
	// 0->2
}
