// SPDX-License-Identifier: MIT

// Package httpapi serves a read-only JSON view of a standings.Report.
//
// Routes (all GET):
//
//	/teams            teams in name order (name BST in-order walk)
//	/teams/{name}     one team; 404 carries fuzzy suggestions
//	/scores           teams by points, ascending (AVL in-order walk)
//	/scores/{score}   first team with exactly that score (binary search)
//	/rankings?top=N   highest and lowest N teams
//	/stats            sizes and heights of the report's indexes
//
// The report is never mutated, so one router may serve concurrent requests.
package httpapi
