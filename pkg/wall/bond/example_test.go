package bond_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

func ExampleStretcher() {
	l := bond.Stretcher(1000, 200)

	fmt.Println("Courses:", l.CourseCount())
	fmt.Println("Bricks:", l.TotalBricks)
	for _, c := range l.Courses {
		fmt.Println(c.Index, c.Widths())
	}
	// Output:
	// Courses: 3
	// Bricks: 17
	// 0 [100 210 210 210 210 10]
	// 1 [210 210 210 210 120]
	// 2 [100 210 210 210 210 10]
}

func ExampleGenerate() {
	p, err := bond.ParsePattern("english")
	if err != nil {
		fmt.Println(err)
		return
	}

	l, err := bond.Generate(context.Background(), p, 2300, 2000, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Pattern, l.CourseCount(), l.TotalBricks)
	// Output:
	// english-cross 32 528
}

func ExampleWild() {
	opts := &bond.WildOptions{Rand: bond.NewRand(7)}
	l, err := bond.Wild(context.Background(), 1000, 600, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	// The width is snapped to the nearest width wild courses can close.
	fmt.Println("Width:", l.Width)
	fmt.Println("Courses:", l.CourseCount())
	// Output:
	// Width: 980
	// Courses: 9
}
