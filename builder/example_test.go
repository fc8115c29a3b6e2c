package builder_test

import (
	"fmt"

	"github.com/katalvlaran/constellation/builder"
)

// ExampleBuildGraph lays out a three-node path with letter IDs.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLetterIDs()}, builder.Path(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.AllEdges() {
		fmt.Printf("%s %.2f\n", e, e.Weight)
	}
	// Output:
	// A-B 1.00
	// B-C 1.00
}
