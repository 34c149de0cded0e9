// SPDX-License-Identifier: MIT

// Package standings turns historical match records into per-team standings
// and assembles the ordered indexes and rankings built on top of them.
//
// Aggregation
//
//	Aggregate makes a single pass over the matches in input order and
//	accumulates one core.Team per distinct name through a name-keyed map.
//	Teams come back in order of first appearance. Points per match come
//	from a ScoringPolicy; ThreePointsForWin (3/1/0) is the default and
//	TwoPointsForWin, GoalsScored, GoalDifference or any WinDrawLoss(w,d,l)
//	can be swapped in with WithPolicy. Re-running Aggregate on the same
//	input yields identical scores.
//
// Pipeline
//
//	Build runs the full flow and returns a Report:
//
//	  matches ─► Aggregate ─► Teams ─┬─► ByName  (bst, key = name)
//	                                 ├─► ByScore (bst, key = score)
//	                                 └─► copy ─► MergeSort ─► Sorted ─┬─► Points (avl, key = score)
//	                                                                  └─► TopRankings ─► Highest / Lowest
//
//	Report.Lookup uses the name BST, Report.FindScore binary-searches Sorted
//	and Report.Suggest ranks team names against a misspelled query with
//	fuzzy matching.
//
// Errors
//
//   - core.ErrInvalidMatch (wrapped with the match index) from Aggregate/Build.
//   - ErrOptionViolation   for nil policies or negative top-N.
//   - ErrUnknownPolicy     from PolicyByName.
package standings
