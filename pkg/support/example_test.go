package support_test

import (
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/support"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

func ExampleAnalyze() {
	l := bond.Stretcher(1000, 200)
	g := support.Analyze(l)

	// The second course starts with a full brick spanning the half brick and
	// the first full brick of the course below.
	first := l.Courses[1].Bricks[0]
	fmt.Println("Supports of", first.ID, g.Dependencies(first.ID))
	fmt.Println("Roots:", len(g.Roots()))
	// Output:
	// Supports of 6 [0 1]
	// Roots: 6
}
