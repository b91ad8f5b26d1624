package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/util"
)

// FormatDistance renders miles in the user's units (e.g., "6 mi", "9.7 km").
func FormatDistance(miles float64, units string) string {
	v := progress.ToDisplayDistance(miles, units)
	label := progress.UnitLabel(units)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d %s", int(v), label)
	}
	return fmt.Sprintf("%.1f %s", v, label)
}

// FormatDuration renders minutes as "45m" or "1h 05m".
func FormatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

// FormatStatus returns a short marker for the workout state.
func FormatStatus(w models.Workout) string {
	switch {
	case w.IsCompleted:
		return "✓"
	case w.IsSkipped:
		return "✗"
	case !w.Type.Countable():
		return "·"
	default:
		return "○"
	}
}

func dayLabel(date string) string {
	d, err := util.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format("Mon Jan 02")
}

func truncate(s string, width int) string {
	if width < config.MinTitleWidth {
		width = config.MinTitleWidth
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}
