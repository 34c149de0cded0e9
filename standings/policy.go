// SPDX-License-Identifier: MIT

package standings

import (
	"fmt"
	"sort"
	"strings"
)

// ScoringPolicy converts one side's result in a single match into standings points.
type ScoringPolicy interface {
	// Name identifies the policy in configuration and reports.
	Name() string
	// Points returns what a side earns for scoring goalsFor and conceding goalsAgainst.
	Points(goalsFor, goalsAgainst int) int
}

type winDrawLoss struct {
	name            string
	win, draw, loss int
}

func (p winDrawLoss) Name() string { return p.name }

func (p winDrawLoss) Points(goalsFor, goalsAgainst int) int {
	switch {
	case goalsFor > goalsAgainst:
		return p.win
	case goalsFor < goalsAgainst:
		return p.loss
	default:
		return p.draw
	}
}

// WinDrawLoss returns a result-based policy awarding fixed points per outcome.
// Its name is "w-d-l", e.g. "3-1-0".
func WinDrawLoss(win, draw, loss int) ScoringPolicy {
	return winDrawLoss{name: fmt.Sprintf("%d-%d-%d", win, draw, loss), win: win, draw: draw, loss: loss}
}

type goalPolicy struct {
	name string
	fn   func(goalsFor, goalsAgainst int) int
}

func (p goalPolicy) Name() string { return p.name }

func (p goalPolicy) Points(goalsFor, goalsAgainst int) int { return p.fn(goalsFor, goalsAgainst) }

// Built-in policies.
var (
	// ThreePointsForWin is the modern league rule: win 3, draw 1, loss 0.
	ThreePointsForWin = WinDrawLoss(3, 1, 0)

	// TwoPointsForWin is the pre-1994 rule: win 2, draw 1, loss 0.
	TwoPointsForWin = WinDrawLoss(2, 1, 0)

	// GoalsScored sums goals scored.
	GoalsScored ScoringPolicy = goalPolicy{name: "goals-scored", fn: func(gf, _ int) int { return gf }}

	// GoalDifference sums goals scored minus goals conceded. Totals may be negative.
	GoalDifference ScoringPolicy = goalPolicy{name: "goal-difference", fn: func(gf, ga int) int { return gf - ga }}
)

var registry = map[string]ScoringPolicy{
	ThreePointsForWin.Name(): ThreePointsForWin,
	TwoPointsForWin.Name():   TwoPointsForWin,
	GoalsScored.Name():       GoalsScored,
	GoalDifference.Name():    GoalDifference,
}

// PolicyByName returns a built-in policy by its Name, case-insensitively.
func PolicyByName(name string) (ScoringPolicy, error) {
	if p, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPolicy, name, strings.Join(PolicyNames(), ", "))
}

// PolicyNames lists the built-in policy names in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
