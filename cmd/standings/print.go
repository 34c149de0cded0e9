// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/standings/dataset"
	"github.com/katalvlaran/standings/standings"
)

func printReport(w io.Writer, r *standings.Report, stats dataset.Stats) {
	fmt.Fprintf(w, "Matches: %d loaded, %d filtered\n", stats.Loaded, stats.Filtered)
	fmt.Fprintf(w, "Policy: %s, %d teams\n", r.Policy.Name(), len(r.Teams))

	fmt.Fprintf(w, "\nTeams by name (BST, height %d):\n", r.ByName.Height())
	for _, t := range r.ByName.InOrder() {
		fmt.Fprintf(w, "  %s\n", t)
	}

	fmt.Fprintf(w, "\nTeams by score (BST, %d distinct, height %d):\n", r.ByScore.Len(), r.ByScore.Height())
	for _, t := range r.ByScore.InOrder() {
		fmt.Fprintf(w, "  %s\n", t)
	}

	fmt.Fprintf(w, "\nTop %d:\n", len(r.Highest))
	for i, t := range r.Highest {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, t)
	}
	fmt.Fprintf(w, "\nBottom %d:\n", len(r.Lowest))
	for i, t := range r.Lowest {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, t)
	}

	fmt.Fprintf(w, "\nPoints (AVL, height %d, %d rotations):\n", r.Points.Height(), r.Points.Rotations())
	for _, t := range r.Points.InOrder() {
		fmt.Fprintf(w, "  %s\n", t)
	}
}

func printLookups(w io.Writer, r *standings.Report, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(w, "\nLookups:")
	for _, name := range names {
		if t, ok := r.Lookup(name); ok {
			fmt.Fprintf(w, "  %s\n", t)
			continue
		}
		if hints := r.Suggest(name, 3); len(hints) > 0 {
			fmt.Fprintf(w, "  %s: not found, did you mean %s?\n", name, strings.Join(hints, ", "))
			continue
		}
		fmt.Fprintf(w, "  %s: not found\n", name)
	}
}
