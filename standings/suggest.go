// SPDX-License-Identifier: MIT

package standings

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest ranks names against query with case-insensitive fuzzy matching
// and returns at most limit of them, closest first. An exact
// case-insensitive match always comes first. limit <= 0 means no limit.
func Suggest(query string, names []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(names) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, rk := range ranks {
		if strings.EqualFold(rk.Target, query) {
			out = append([]string{rk.Target}, out...)
			continue
		}
		out = append(out, rk.Target)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
