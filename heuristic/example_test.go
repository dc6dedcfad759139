package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/heuristic"
)

// ExampleTable shows the fallback to zero for goals other than the target.
func ExampleTable() {
	tbl, _ := heuristic.NewTable("Bucharest", map[string]float64{"Arad": 366})

	fmt.Println(tbl.Estimate("Arad", "Bucharest"))
	fmt.Println(tbl.Estimate("Arad", "Craiova"))

	// Output:
	// 366
	// 0
}
