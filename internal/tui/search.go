package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/util"
)

type searchResult struct {
	weekIdx int
	dayIdx  int
	workout models.Workout
}

type searchState struct {
	results []searchResult
	cursor  int
}

func newSearchState(p *models.TrainingPlan, query string) searchState {
	return searchState{results: searchWorkouts(p, util.ParseSearchQuery(query))}
}

func workoutStatus(w models.Workout) string {
	switch {
	case w.IsCompleted:
		return "done"
	case w.IsSkipped:
		return "skipped"
	}
	return "pending"
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func matchesQuery(q util.SearchQuery, weekNumber int, w models.Workout) bool {
	if len(q.Type) > 0 && !containsString(q.Type, string(w.Type)) {
		return false
	}
	if len(q.Status) > 0 && !containsString(q.Status, workoutStatus(w)) {
		return false
	}
	if len(q.Weeks) > 0 {
		found := false
		for _, n := range q.Weeks {
			if n == weekNumber {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	haystack := strings.ToLower(w.Title + " " + w.Description + " " + w.Notes)
	for _, word := range q.Text {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}

// searchWorkouts lists matching workouts in date order, up to MaxSearchResults.
// An empty query matches nothing.
func searchWorkouts(p *models.TrainingPlan, q util.SearchQuery) []searchResult {
	if p == nil || q.Empty() {
		return nil
	}
	var out []searchResult
	for i, week := range p.Weeks {
		for j, w := range week.Workouts {
			if !matchesQuery(q, week.WeekNumber, w) {
				continue
			}
			out = append(out, searchResult{weekIdx: i, dayIdx: j, workout: w})
			if len(out) == config.MaxSearchResults {
				return out
			}
		}
	}
	return out
}

func (m MainModel) renderSearchResults() string {
	if len(m.search.results) == 0 {
		return m.theme.Dim.Render("No matches")
	}
	var b strings.Builder
	for i, r := range m.search.results {
		line := fmt.Sprintf("%s W%-2d %s %s", FormatStatus(r.workout), r.weekIdx+1,
			dayLabel(r.workout.Date), truncate(r.workout.Title, config.TargetTitleWidth))
		if i == m.search.cursor {
			b.WriteString(m.theme.Focused.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render("[↑/↓] select  [enter] jump  [esc] close"))
	return b.String()
}
