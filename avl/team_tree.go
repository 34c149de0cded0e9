// SPDX-License-Identifier: MIT

package avl

import (
	"fmt"

	"github.com/katalvlaran/standings/core"
)

// TeamTree is an AVL tree of teams keyed by aggregate score.
type TeamTree struct {
	*Tree[int, *core.Team]
}

// NewTeamTree returns an empty score-keyed team tree.
func NewTeamTree(opts ...Option) *TeamTree {
	return &TeamTree{Tree: New[int, *core.Team](opts...)}
}

// InsertTeam inserts team under team.Score.
func (t *TeamTree) InsertTeam(team *core.Team) error {
	if team == nil {
		return fmt.Errorf("avl: InsertTeam: %w", core.ErrNilTeam)
	}
	t.Insert(team.Score, team)

	return nil
}

// BuildTeamTree inserts teams in slice order. Nil entries are skipped.
// Feeding an ascending slice exercises the right-right rotation path on
// every other insertion, which is how the standings pipeline uses it.
func BuildTeamTree(teams []*core.Team, opts ...Option) *TeamTree {
	tt := NewTeamTree(opts...)
	for _, team := range teams {
		if team == nil {
			continue
		}
		tt.Insert(team.Score, team)
	}

	return tt
}
