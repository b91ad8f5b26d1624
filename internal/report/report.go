// Package report renders a printable training plan with progress marks.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/util"
)

// FileName is the default report name for p.
func FileName(p *models.TrainingPlan) string {
	return fmt.Sprintf("marathon_plan_%s.pdf", p.RaceDate)
}

// WriteFile renders the report into dir and returns the absolute path.
func WriteFile(dir string, p *models.TrainingPlan, stats models.PlanStats, units string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(p))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, p, stats, units); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// Write renders the plan week by week followed by a stats summary.
func Write(w io.Writer, p *models.TrainingPlan, stats models.PlanStats, units string) error {
	if p == nil {
		return fmt.Errorf("report: no plan")
	}
	label := progress.UnitLabel(units)
	dist := func(miles float64) string {
		return fmt.Sprintf("%.1f %s", progress.ToDisplayDistance(miles, units), label)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s marathon plan", p.PlanName), false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Marathon Plan: %s", p.PlanName))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Race day %s, training from %s", p.RaceDate, p.StartDate))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Progress")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	summary := []string{
		fmt.Sprintf("Week %d of %d, %d days until race", stats.CurrentWeek, len(p.Weeks), stats.DaysUntilRace),
		fmt.Sprintf("Completed %d of %d workouts (%d%%), %d skipped", stats.CompletedWorkouts, stats.TotalWorkouts, stats.CompletionRate, stats.SkippedWorkouts),
		fmt.Sprintf("Distance %s of %s", dist(stats.TotalCompletedMiles), dist(stats.TotalPlannedMiles)),
		fmt.Sprintf("Current streak %d, longest streak %d", stats.CurrentStreak, stats.LongestStreak),
	}
	for _, line := range summary {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, week := range p.Weeks {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Week %d  (%s to %s)  %s planned", week.WeekNumber, week.StartDate, week.EndDate, dist(week.TotalPlannedMileage)))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, wo := range week.Workouts {
			pdf.Cell(0, 5, fmt.Sprintf("  %s %s  %s", statusMark(wo), dayLabel(wo.Date), wo.Title))
			pdf.Ln(5)
			if wo.Notes != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 4, "        "+wo.Notes, "", "", false)
				pdf.SetFont("Arial", "", 10)
			}
		}
		pdf.Ln(3)
	}

	return pdf.Output(w)
}

func statusMark(w models.Workout) string {
	switch {
	case w.IsCompleted:
		return "[x]"
	case w.IsSkipped:
		return "[-]"
	default:
		return "[ ]"
	}
}

func dayLabel(date string) string {
	d, err := util.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format("Mon Jan 02")
}
