// SPDX-License-Identifier: MIT

package standings

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/standings/avl"
	"github.com/katalvlaran/standings/bst"
	"github.com/katalvlaran/standings/core"
	"github.com/katalvlaran/standings/search"
	"github.com/katalvlaran/standings/sorting"
)

// Report bundles the standings and every index built from them.
// It is read-only once Build returns.
type Report struct {
	// Policy is the scoring policy the scores were computed with.
	Policy ScoringPolicy

	// Teams is the aggregation output in order of first appearance.
	Teams []*core.Team

	// Sorted holds the same teams ascending by score (stable).
	Sorted []*core.Team

	// ByName and ByScore are unbalanced BSTs filled in Teams order.
	ByName  *bst.Tree[string, *core.Team]
	ByScore *bst.Tree[int, *core.Team]

	// Points is the AVL tree filled from Sorted.
	Points *avl.TeamTree

	// Highest is the top-N by score, descending; Lowest the bottom-N, ascending.
	Highest []*core.Team
	Lowest  []*core.Team
}

// Build aggregates matches and builds the name/score BSTs, the sorted
// ranking, the AVL index and the top/bottom rankings.
func Build(matches []core.Match, opts ...Option) (*Report, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	teams, err := aggregate(matches, o)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Policy:  o.Policy,
		Teams:   teams,
		ByName:  bst.New[string, *core.Team](bst.WithDuplicates(o.Duplicates)),
		ByScore: bst.New[int, *core.Team](bst.WithDuplicates(o.Duplicates)),
	}
	for _, t := range teams {
		r.ByName.Insert(t.Name, t)
		r.ByScore.Insert(t.Score, t)
	}
	o.Logger.Printf("indexed %d teams: name bst height %d, score bst height %d (%d distinct scores)",
		len(teams), r.ByName.Height(), r.ByScore.Height(), r.ByScore.Len())

	r.Sorted = slices.Clone(teams)
	if err := sorting.MergeSortTeams(r.Sorted, sorting.WithParallelThreshold(o.ParallelSortThreshold)); err != nil {
		return nil, fmt.Errorf("standings: sort: %w", err)
	}

	r.Points = avl.BuildTeamTree(r.Sorted, avl.WithDuplicates(o.Duplicates))
	o.Logger.Printf("avl by points: height %d, %d rotations", r.Points.Height(), r.Points.Rotations())

	r.Highest, r.Lowest, err = sorting.TopRankings(r.Sorted, o.TopN)
	if err != nil {
		return nil, fmt.Errorf("standings: rankings: %w", err)
	}

	return r, nil
}

// Lookup finds a team by exact name through the name BST.
func (r *Report) Lookup(name string) (*core.Team, bool) {
	return r.ByName.Search(name)
}

// FindScore binary-searches Sorted for the first team with the given score.
func (r *Report) FindScore(score int) (search.Result[*core.Team], error) {
	return search.TeamByScore(r.Sorted, score)
}

// Names returns every team name in ascending order.
func (r *Report) Names() []string {
	names := make([]string, 0, r.ByName.Len())
	for name := range r.ByName.InOrder() {
		names = append(names, name)
	}
	return names
}

// Suggest returns up to limit team names that fuzzily match query.
func (r *Report) Suggest(query string, limit int) []string {
	return Suggest(query, r.Names(), limit)
}

// Resolve returns the team named query, falling back to the best fuzzy
// match when there is no exact hit.
func (r *Report) Resolve(query string) (*core.Team, bool) {
	if t, ok := r.Lookup(query); ok {
		return t, true
	}
	if best := r.Suggest(query, 1); len(best) == 1 {
		return r.Lookup(best[0])
	}
	return nil, false
}
