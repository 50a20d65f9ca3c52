package plan_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

func ExampleSweep() {
	l := bond.Stretcher(2300, 2000)

	p, err := plan.DefaultSweep().Plan(context.Background(), l)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Status, p.Complete(l), p.Strides)
	// Output:
	// complete true 29
}

func ExampleGreedy() {
	l := bond.Stretcher(2300, 2000)

	p, err := plan.DefaultGreedy().Plan(context.Background(), l)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Status, len(p.Placements), p.Strides)
	// Output:
	// complete 352 27
}

func ExampleNaive() {
	l := bond.Stretcher(1000, 200)

	p, _ := plan.Naive{}.Plan(context.Background(), l)
	for _, pl := range p.Placements[:3] {
		fmt.Println(pl.ID, pl.HasStride())
	}
	// Output:
	// 0 false
	// 1 false
	// 2 false
}
