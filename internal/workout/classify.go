// Package workout turns schedule day-codes into structured workouts.
package workout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
)

const (
	restDescription   = "Rest and recover. Your body builds strength during rest."
	crossDescription  = "Low-impact cardio: cycling, swimming, elliptical, or yoga."
	raceDescription   = "Race Day! Trust your training and enjoy the journey."
	halfDescription   = "Half marathon race or time trial. Run at goal pace."
	paceDescription   = "Run at your goal marathon pace. Focus on rhythm and form."
	easyDescription   = "Easy run at conversational pace."
	mediumDescription = "Medium-long run. Build your endurance."
	longDescription   = "Long run. Start easy and maintain steady effort."
)

var (
	paceDistanceRe = regexp.MustCompile(`(\d+)\s*(?:m|mi)`)
	leadingMilesRe = regexp.MustCompile(`^(\d+)\s*mi`)
	embeddedMPRe   = regexp.MustCompile(`w/(\d+)\s*@\s*MP`)
	runRe          = regexp.MustCompile(`(\d+)\s*(?:m|mi)\s*run`)
	bareNumberRe   = regexp.MustCompile(`^(\d+)$`)
)

var speedMarkers = []string{"x hill", "x 400", "x 800", "x 1600", "x 1K", "tempo"}

// Kind is the tagged result of a matching rule.
type Kind struct {
	Type        models.WorkoutType
	Title       string
	Description string
	Distance    *float64
}

type rule struct {
	name  string
	match func(code string) (Kind, bool)
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{"rest", matchRest},
	{"cross", matchCross},
	{"marathon", matchMarathon},
	{"half-marathon", matchHalfMarathon},
	{"pace", matchPace},
	{"mp-long-run", matchMPLongRun},
	{"speed", matchSpeed},
	{"run", matchRun},
	{"bare-number", matchBareNumber},
	{"fallback", matchFallback},
}

// Classify parses one day-code into a workout dated date. It returns false
// only for empty or whitespace-only input.
func Classify(dayCode, date string) (models.Workout, bool) {
	kind, _, ok := Match(dayCode)
	if !ok {
		return models.Workout{}, false
	}
	return models.Workout{
		ID:          uuid.NewString(),
		Date:        date,
		Title:       kind.Title,
		Description: kind.Description,
		Type:        kind.Type,
		Distance:    kind.Distance,
		Unit:        models.UnitMiles,
	}, true
}

// Match runs the rule list and reports which rule matched.
func Match(dayCode string) (Kind, string, bool) {
	if strings.TrimSpace(dayCode) == "" {
		return Kind{}, "", false
	}
	for _, r := range rules {
		if kind, ok := r.match(dayCode); ok {
			return kind, r.name, true
		}
	}
	return Kind{}, "", false
}

func matchRest(code string) (Kind, bool) {
	if !strings.Contains(code, "Rest") {
		return Kind{}, false
	}
	return Kind{Type: models.WorkoutRest, Title: "Rest", Description: restDescription}, true
}

func matchCross(code string) (Kind, bool) {
	if !strings.Contains(code, "Cross") {
		return Kind{}, false
	}
	return Kind{Type: models.WorkoutCross, Title: "Cross Train", Description: crossDescription}, true
}

func matchMarathon(code string) (Kind, bool) {
	if code != "Marathon" {
		return Kind{}, false
	}
	return Kind{Type: models.WorkoutRace, Title: "Marathon", Description: raceDescription, Distance: miles(config.MarathonMiles)}, true
}

func matchHalfMarathon(code string) (Kind, bool) {
	if !strings.Contains(code, "Half Marathon") {
		return Kind{}, false
	}
	return Kind{Type: models.WorkoutRace, Title: "Half Marathon", Description: halfDescription, Distance: miles(config.HalfMarathonMiles)}, true
}

// matchPace leaves long runs with an embedded MP segment to matchMPLongRun.
func matchPace(code string) (Kind, bool) {
	if strings.Contains(code, "w/") {
		return Kind{}, false
	}
	if !strings.Contains(code, "pace") && !strings.Contains(code, "@ MP") {
		return Kind{}, false
	}
	n, ok := firstInt(paceDistanceRe, code)
	if !ok {
		return Kind{}, false
	}
	return Kind{
		Type:        models.WorkoutPace,
		Title:       fmt.Sprintf("%d mi pace", n),
		Description: paceDescription,
		Distance:    miles(float64(n)),
	}, true
}

func matchMPLongRun(code string) (Kind, bool) {
	if !strings.Contains(code, "w/") || !strings.Contains(code, "@ MP") {
		return Kind{}, false
	}
	n, ok := firstInt(leadingMilesRe, code)
	if !ok {
		return Kind{}, false
	}
	mp, _ := firstInt(embeddedMPRe, code)
	return Kind{
		Type:        models.WorkoutRun,
		Title:       fmt.Sprintf("%d mi long run", n),
		Description: fmt.Sprintf("Long run with %d miles at marathon pace.", mp),
		Distance:    miles(float64(n)),
	}, true
}

func matchSpeed(code string) (Kind, bool) {
	for _, marker := range speedMarkers {
		if strings.Contains(code, marker) {
			return Kind{Type: models.WorkoutPace, Title: "Speed workout", Description: code}, true
		}
	}
	return Kind{}, false
}

func matchRun(code string) (Kind, bool) {
	n, ok := firstInt(runRe, code)
	if !ok {
		return Kind{}, false
	}
	return distanceRun(n), true
}

func matchBareNumber(code string) (Kind, bool) {
	n, ok := firstInt(bareNumberRe, strings.TrimSpace(code))
	if !ok {
		return Kind{}, false
	}
	return distanceRun(n), true
}

func matchFallback(code string) (Kind, bool) {
	return Kind{Type: models.WorkoutRun, Title: "Workout", Description: code}, true
}

func distanceRun(n int) Kind {
	return Kind{
		Type:        models.WorkoutRun,
		Title:       fmt.Sprintf("%d mi run", n),
		Description: RunDescription(float64(n)),
		Distance:    miles(float64(n)),
	}
}

// RunDescription picks the narrative for a plain run of the given length.
func RunDescription(distance float64) string {
	switch {
	case distance >= config.LongRunMiles:
		return longDescription
	case distance >= config.MediumLongRunMiles:
		return mediumDescription
	default:
		return easyDescription
	}
}

func firstInt(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func miles(v float64) *float64 {
	return &v
}
