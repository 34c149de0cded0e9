// SPDX-License-Identifier: MIT

// Package core defines the central Match and Team types shared by every
// standings package, together with the comparators, key extractors and
// sentinel errors the trees, sorts and searches agree on.
//
// What
//
//   - Match: one immutable historical fixture (date, teams, scores, venue).
//   - Team:  per-team aggregate produced by standings.Aggregate.
//   - Outcome: HomeWin / AwayWin / Draw derived from a Match score line.
//   - DuplicatePolicy: the single duplicate-key rule used by bst and avl.
//
// Ordering
//
//	CompareScore orders teams by ascending Score only, so equal scores
//	compare as equal and stable sorts keep their input order.
//	CompareName orders teams lexicographically by Name.
//
// Errors
//
//   - ErrInvalidMatch  a Match violates its invariants (empty name, negative score).
//   - ErrNilTeam       a nil *Team was handed to an index.
//   - ErrPrecondition  base error for caller contract violations; package
//     sentinels such as search.ErrUnsorted wrap it, so
//     errors.Is(err, core.ErrPrecondition) matches all of them.
package core
