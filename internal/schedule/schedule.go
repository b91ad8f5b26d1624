// Package schedule holds the static weekly templates for every plan tier and
// the catalog describing them.
package schedule

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/marathon/internal/models"
)

// Get returns a copy of the 18x7 day-code template for tier.
func Get(tier models.PlanTier) ([][]string, bool) {
	table, ok := tables[tier]
	if !ok {
		return nil, false
	}
	out := make([][]string, len(table))
	for i, week := range table {
		out[i] = append([]string(nil), week...)
	}
	return out, true
}

var catalog = []models.PlanMetadata{
	{
		ID:          models.TierNovice1,
		Name:        "Novice 1",
		Description: "The most popular plan for first-time marathoners.",
		RunsPerWeek: 4,
		PeakMileage: 40,
		BestFor:     "First-timers, completion focus",
	},
	{
		ID:          models.TierNovice2,
		Name:        "Novice 2",
		Description: "For beginners who want to include pace work.",
		RunsPerWeek: 4,
		PeakMileage: 40,
		BestFor:     "First-timers wanting pace work",
	},
	{
		ID:          models.TierIntermediate1,
		Name:        "Intermediate 1",
		Description: "Stepping up mileage with cross training.",
		RunsPerWeek: 5,
		PeakMileage: 45,
		BestFor:     "Some experience, ready for more",
	},
	{
		ID:          models.TierIntermediate2,
		Name:        "Intermediate 2",
		Description: "Higher volume for time improvements.",
		RunsPerWeek: 5,
		PeakMileage: 50,
		BestFor:     "Experienced runners with a time goal",
	},
	{
		ID:          models.TierAdvanced1,
		Name:        "Advanced 1",
		Description: "Includes speedwork, hills, and tempo runs.",
		RunsPerWeek: 6,
		PeakMileage: 55,
		BestFor:     "Serious runners seeking improvement",
	},
	{
		ID:          models.TierAdvanced2,
		Name:        "Advanced 2",
		Description: "Marathon pace focus with high volume.",
		RunsPerWeek: 6,
		PeakMileage: 60,
		BestFor:     "Competitive runners, PR focus",
	},
}

// Plans returns the catalog in selection order.
func Plans() []models.PlanMetadata {
	return append([]models.PlanMetadata(nil), catalog...)
}

// Tiers lists every supported tier in selection order.
func Tiers() []models.PlanTier {
	tiers := make([]models.PlanTier, 0, len(catalog))
	for _, p := range catalog {
		tiers = append(tiers, p.ID)
	}
	return tiers
}

// Lookup returns the catalog entry for tier.
func Lookup(tier models.PlanTier) (models.PlanMetadata, bool) {
	for _, p := range catalog {
		if p.ID == tier {
			return p, true
		}
	}
	return models.PlanMetadata{}, false
}

// Name returns the display name of tier, or the tier id when it is unknown.
func Name(tier models.PlanTier) string {
	if p, ok := Lookup(tier); ok {
		return p.Name
	}
	return string(tier)
}

// ParseTier accepts a tier id ("advanced2") or display name ("Advanced 2").
func ParseTier(s string) (models.PlanTier, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, p := range catalog {
		if string(p.ID) == norm {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("unknown plan tier %q", s)
}
