package closure_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mdbackbone/closure"
	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

// ExampleBuild computes the full closure of a single-layer triangle with a
// direct shortcut.
func ExampleBuild() {
	l := multidist.LayerID{}
	g := mgraph.New()
	g.AddEdge(0, 1, multidist.Single(l, 2.0))
	g.AddEdge(1, 2, multidist.Single(l, 2.0))
	g.AddEdge(0, 2, multidist.Single(l, 4.0))

	c, err := closure.Build(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(c[0][2]))
	// Output: 1
}
