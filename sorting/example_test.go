// SPDX-License-Identifier: MIT

package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/standings/core"
	"github.com/katalvlaran/standings/sorting"
)

// ExampleTopRankings sorts teams by score and prints the best and worst two.
func ExampleTopRankings() {
	teams := []*core.Team{
		{Name: "Brazil", Score: 6},
		{Name: "Chile", Score: 0},
		{Name: "Peru", Score: 3},
		{Name: "Uruguay", Score: 3},
		{Name: "Bolivia", Score: 1},
	}
	if err := sorting.MergeSortTeams(teams); err != nil {
		fmt.Println("error:", err)
		return
	}
	best, worst, _ := sorting.TopRankings(teams, 2)
	fmt.Println("best:", best)
	fmt.Println("worst:", worst)
	// Output:
	// best: [Brazil: 6 Uruguay: 3]
	// worst: [Chile: 0 Bolivia: 1]
}
