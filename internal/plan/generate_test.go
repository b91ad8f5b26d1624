package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/schedule"
	"github.com/akyairhashvil/marathon/internal/util"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := util.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestGenerateShapeForEveryTier(t *testing.T) {
	race := mustDate(t, "2025-10-12")
	for _, tier := range schedule.Tiers() {
		p, err := Generate(race, tier)
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", tier, err)
		}
		if len(p.Weeks) != config.PlanWeeks {
			t.Fatalf("%s: %d weeks", tier, len(p.Weeks))
		}
		all := p.AllWorkouts()
		if len(all) != config.PlanDays {
			t.Fatalf("%s: %d workouts", tier, len(all))
		}
		prev := util.AddDays(mustDate(t, all[0].Date), -1)
		for _, w := range all {
			d := mustDate(t, w.Date)
			if util.DaysBetween(prev, d) != 1 {
				t.Fatalf("%s: gap between %s and %s", tier, util.FormatDate(prev), w.Date)
			}
			prev = d

			switch w.Type {
			case models.WorkoutRun, models.WorkoutPace, models.WorkoutRace:
				if w.Title != "Speed workout" && (w.Distance == nil || *w.Distance < 0) {
					t.Fatalf("%s: %s on %s has no distance", tier, w.Title, w.Date)
				}
			case models.WorkoutRest, models.WorkoutCross:
				if w.Distance != nil {
					t.Fatalf("%s: %s on %s has a distance", tier, w.Title, w.Date)
				}
			}
		}
		last := p.Weeks[config.PlanWeeks-1].Workouts[config.DaysPerWeek-1]
		if last.Date != p.RaceDate || last.Type != models.WorkoutRace {
			t.Fatalf("%s: last workout is %+v", tier, last)
		}
		if p.StartDate != p.Weeks[0].StartDate || p.EndDate() != p.RaceDate {
			t.Fatalf("%s: plan bounds %s..%s", tier, p.StartDate, p.EndDate())
		}
	}
}

func TestGenerateNovice1Scenario(t *testing.T) {
	p, err := Generate(mustDate(t, "2025-06-01"), models.TierNovice1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	race, _, ok := p.WorkoutOn("2025-06-01")
	if !ok || race.Title != "Marathon" || race.Distance == nil || *race.Distance != 26.2 {
		t.Fatalf("race day workout = %+v", race)
	}
	if p.StartDate != "2025-01-27" {
		t.Fatalf("start date = %s", p.StartDate)
	}
	first := p.Weeks[0].Workouts[0]
	if first.Date != "2025-01-27" || first.Type != models.WorkoutRest {
		t.Fatalf("first workout = %+v", first)
	}
	if p.PlanName != "Novice 1" || p.PlanTier != models.TierNovice1 {
		t.Fatalf("plan identity = %s/%s", p.PlanTier, p.PlanName)
	}
	// Week 1: 3 + 3 + 3 + 6
	if p.Weeks[0].TotalPlannedMileage != 15 {
		t.Fatalf("week 1 mileage = %v", p.Weeks[0].TotalPlannedMileage)
	}
}

func TestGenerateIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	late := time.Date(2025, 6, 1, 23, 45, 0, 0, loc)
	p, err := Generate(late, models.TierNovice1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.RaceDate != "2025-06-01" {
		t.Fatalf("race date drifted to %s", p.RaceDate)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	race := mustDate(t, "2026-04-20")
	a, _ := Generate(race, models.TierAdvanced2)
	b, _ := Generate(race, models.TierAdvanced2)
	if a.ID == b.ID {
		t.Fatalf("plan ids should differ")
	}
	wa, wb := a.AllWorkouts(), b.AllWorkouts()
	for i := range wa {
		if wa[i].ID == wb[i].ID {
			t.Fatalf("workout ids should differ at %d", i)
		}
		if wa[i].Date != wb[i].Date || wa[i].Type != wb[i].Type || wa[i].Title != wb[i].Title ||
			wa[i].PlannedDistance() != wb[i].PlannedDistance() {
			t.Fatalf("structure differs at %d: %+v vs %+v", i, wa[i], wb[i])
		}
	}
}

func TestGenerateUnknownTier(t *testing.T) {
	_, err := Generate(mustDate(t, "2025-06-01"), models.PlanTier("elite"))
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}

func TestGenerateRaceTooSoonStillLaysOutFullPlan(t *testing.T) {
	today := mustDate(t, "2025-05-01")
	race := mustDate(t, "2025-06-01")
	if !TooSoon(race, today) {
		t.Fatalf("expected a too-soon warning")
	}
	p, err := Generate(race, models.TierNovice1)
	if err != nil || len(p.AllWorkouts()) != config.PlanDays {
		t.Fatalf("expected a full plan, got err=%v", err)
	}
}

func TestWeeksUntil(t *testing.T) {
	today := mustDate(t, "2025-01-01")
	tests := []struct {
		race string
		want int
	}{
		{"2025-01-01", 0},
		{"2025-01-07", 0},
		{"2025-01-08", 1},
		{"2025-05-07", 18},
		{"2024-12-31", -1},
	}
	for _, tt := range tests {
		if got := WeeksUntil(mustDate(t, tt.race), today); got != tt.want {
			t.Fatalf("WeeksUntil(%s) = %d, want %d", tt.race, got, tt.want)
		}
	}
	if TooSoon(mustDate(t, "2025-05-07"), today) {
		t.Fatalf("18 weeks out should not be too soon")
	}
}
