package icebergs_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/icepath/grid"
	"github.com/katalvlaran/icepath/icebergs"
)

// ////////////////////////////////////////////////////////////////////////////
// Example: both counters on one grid
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	. . . .
//	. X . .
//	. . . X
//	X . . .
//
// Exhaustive tries 2^6 = 64 move sequences; DynProg fills 16 cells.
func ExampleDynProg() {
	g, _ := grid.ParseString("....\n.X..\n...X\nX...")

	brute, _ := icebergs.Exhaustive(g)
	dp, _ := icebergs.DynProg(g)
	fmt.Println("exhaustive:", brute)
	fmt.Println("dynprog:", dp)
	// Output:
	// exhaustive: 3
	// dynprog: 3
}

// ExampleTable prints the per-cell counts around a centre iceberg.
func ExampleTable() {
	g, _ := grid.ParseString("...\n.X.\n...")
	table, _ := icebergs.Table(g)
	for _, row := range table {
		fmt.Println(row)
	}
	// Output:
	// [1 1 1]
	// [1 0 1]
	// [1 1 2]
}

// ExampleDynProgBig counts an open 40×40 grid, which overflows uint64.
func ExampleDynProgBig() {
	g, _ := grid.Empty(40, 40)
	_, err := icebergs.DynProg(g)
	fmt.Println("overflow:", errors.Is(err, icebergs.ErrCountOverflow))

	n, _ := icebergs.DynProgBig(g)
	fmt.Println(n)
	// Output:
	// overflow: true
	// 27217014869199032015600
}

// ExampleCrossCheck validates both counters against each other.
func ExampleCrossCheck() {
	g, _ := grid.Random(6, 7, grid.WithSeed(3), grid.WithDensity(0))
	n, err := icebergs.CrossCheck(context.Background(), g)
	fmt.Println(n, err)
	// Output:
	// 462 <nil>
}
