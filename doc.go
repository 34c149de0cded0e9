// Package standings turns football match results into team standings and
// keeps them in ordered structures you can walk, rank and search.
//
// What is in the box?
//
//	• Core records: Match, Team, Outcome and the shared duplicate-key policy
//	• Ordered maps: an unbalanced BST and a self-balancing AVL tree, both generic
//	• Sorting: stable (optionally parallel) merge sort, bubble sort, top/bottom-N
//	• Searching: linear and leftmost binary search with unsorted-input detection
//	• Aggregation: pluggable scoring policies (3-1-0, 2-1-0, goals, goal difference)
//	• I/O: CSV loading with missing-value filtering, CSV and SQLite exports
//	• Surfaces: a CLI and a read-only JSON API
//
// Packages:
//
//	core/          Match, Team, comparators, sentinel errors, DuplicatePolicy
//	bst/           generic binary search tree (iterative insert, in-order iterator)
//	avl/           generic AVL tree + TeamTree keyed by points
//	sorting/       MergeSort, BubbleSort, TopRankings
//	search/        Linear, Binary, TeamByName, TeamByScore
//	standings/     Aggregate, Build → Report, scoring policies, fuzzy Suggest
//	dataset/       ReadMatches/LoadFile, WriteSummary, WriteStandings, ExportSQLite
//	fixture/       deterministic round-robin match generator for demos and tests
//	httpapi/       gorilla/mux router over a Report
//	cmd/standings/ command-line entry point
//
// Quick example:
//
//	matches, _, _ := dataset.LoadFile("results.csv")
//	r, _ := standings.Build(matches, standings.WithTopN(5))
//	for i, t := range r.Highest {
//		fmt.Printf("%d. %s\n", i+1, t)
//	}
//
//	go install github.com/katalvlaran/standings/cmd/standings@latest
package standings
