// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/standings/core"
	"github.com/katalvlaran/standings/sorting"
	"github.com/katalvlaran/standings/standings"
)

// SuggestLimit caps the suggestions returned with a 404 team lookup.
const SuggestLimit = 3

// Team is the JSON form of core.Team.
type Team struct {
	Name         string `json:"name"`
	Score        int    `json:"score"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}

// Rankings is the /rankings payload.
type Rankings struct {
	Top     int    `json:"top"`
	Highest []Team `json:"highest"`
	Lowest  []Team `json:"lowest"`
}

// Stats is the /stats payload.
type Stats struct {
	Policy          string `json:"policy"`
	Teams           int    `json:"teams"`
	NameTreeHeight  int    `json:"name_tree_height"`
	ScoreTreeSize   int    `json:"score_tree_size"`
	ScoreTreeHeight int    `json:"score_tree_height"`
	AVLHeight       int    `json:"avl_height"`
	AVLSize         int    `json:"avl_size"`
	AVLRotations    int    `json:"avl_rotations"`
}

// NotFound is the body of a 404 response.
type NotFound struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type handler struct {
	report *standings.Report
}

// NewRouter wires the read-only routes for r. Panics if r is nil.
func NewRouter(r *standings.Report) *mux.Router {
	if r == nil {
		panic("httpapi: NewRouter(nil report)")
	}
	h := &handler{report: r}

	m := mux.NewRouter()
	m.HandleFunc("/teams", h.handleTeams).Methods(http.MethodGet)
	m.HandleFunc("/teams/{name}", h.handleTeam).Methods(http.MethodGet)
	m.HandleFunc("/scores", h.handleScores).Methods(http.MethodGet)
	m.HandleFunc("/scores/{score}", h.handleScore).Methods(http.MethodGet)
	m.HandleFunc("/rankings", h.handleRankings).Methods(http.MethodGet)
	m.HandleFunc("/stats", h.handleStats).Methods(http.MethodGet)

	return m
}

func (h *handler) handleTeams(w http.ResponseWriter, _ *http.Request) {
	out := make([]Team, 0, h.report.ByName.Len())
	for _, t := range h.report.ByName.InOrder() {
		out = append(out, toTeam(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	t, ok := h.report.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, NotFound{
			Error:       "team not found: " + name,
			Suggestions: h.report.Suggest(name, SuggestLimit),
		})
		return
	}
	writeJSON(w, http.StatusOK, toTeam(t))
}

func (h *handler) handleScores(w http.ResponseWriter, _ *http.Request) {
	out := make([]Team, 0, h.report.Points.Len())
	for _, t := range h.report.Points.InOrder() {
		out = append(out, toTeam(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) handleScore(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["score"]
	score, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid score "+strconv.Quote(raw), http.StatusBadRequest)
		return
	}
	res, err := h.report.FindScore(score)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !res.Found {
		writeJSON(w, http.StatusNotFound, NotFound{Error: "no team with score " + raw})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"index": res.Index,
		"team":  toTeam(res.Value),
	})
}

func (h *handler) handleRankings(w http.ResponseWriter, r *http.Request) {
	top := len(h.report.Highest)
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid top "+strconv.Quote(raw), http.StatusBadRequest)
			return
		}
		top = n
	}

	highest, lowest, err := sorting.TopRankings(h.report.Sorted, top)
	if errors.Is(err, core.ErrPrecondition) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, Rankings{
		Top:     len(highest),
		Highest: toTeams(highest),
		Lowest:  toTeams(lowest),
	})
}

func (h *handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	rep := h.report
	writeJSON(w, http.StatusOK, Stats{
		Policy:          rep.Policy.Name(),
		Teams:           len(rep.Teams),
		NameTreeHeight:  rep.ByName.Height(),
		ScoreTreeSize:   rep.ByScore.Len(),
		ScoreTreeHeight: rep.ByScore.Height(),
		AVLHeight:       rep.Points.Height(),
		AVLSize:         rep.Points.Len(),
		AVLRotations:    rep.Points.Rotations(),
	})
}

func toTeam(t *core.Team) Team {
	return Team{
		Name:         t.Name,
		Score:        t.Score,
		Played:       t.Played,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
	}
}

func toTeams(ts []*core.Team) []Team {
	out := make([]Team, len(ts))
	for i, t := range ts {
		out[i] = toTeam(t)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// status is already sent; the client most likely went away
		log.Printf("httpapi: encode %T response: %v", v, err)
	}
}
