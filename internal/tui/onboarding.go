package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/plan"
	"github.com/akyairhashvil/marathon/internal/schedule"
	"github.com/akyairhashvil/marathon/internal/util"
)

var errInvalidRaceDate = errors.New("race date must be YYYY-MM-DD")

const (
	stepRaceDate = iota
	stepTier
)

type onboardingState struct {
	step      int
	dateInput textinput.Model
	raceDate  time.Time
	tierIdx   int
	warning   string
}

func (m *MainModel) startOnboarding() {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = config.DateInputLength
	ti.Width = 20
	ti.Focus()
	m.onboarding = onboardingState{step: stepRaceDate, dateInput: ti}
	m.screen = ScreenOnboarding
	m.modal = modalNone
}

func (m MainModel) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ob := &m.onboarding
	switch ob.step {
	case stepRaceDate:
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			raceDate, err := util.ParseDate(strings.TrimSpace(ob.dateInput.Value()))
			if err != nil {
				m.err = errInvalidRaceDate
				return m, nil
			}
			today := m.store.Today()
			if raceDate.Before(today) {
				m.err = fmt.Errorf("race date %s is in the past", util.FormatDate(raceDate))
				return m, nil
			}
			m.err = nil
			ob.raceDate = raceDate
			ob.warning = ""
			if plan.TooSoon(raceDate, today) {
				ob.warning = fmt.Sprintf("Only %d weeks until race day. The plan assumes %d; early weeks will already be in the past.",
					plan.WeeksUntil(raceDate, today), config.PlanWeeks)
			}
			ob.step = stepTier
			ob.dateInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		ob.dateInput, cmd = ob.dateInput.Update(msg)
		return m, cmd

	case stepTier:
		plans := schedule.Plans()
		switch msg.String() {
		case "up", "k":
			ob.tierIdx = util.Clamp(ob.tierIdx-1, 0, len(plans)-1)
		case "down", "j":
			ob.tierIdx = util.Clamp(ob.tierIdx+1, 0, len(plans)-1)
		case "esc":
			ob.step = stepRaceDate
			cmd := ob.dateInput.Focus()
			return m, cmd
		case "enter":
			p, err := m.store.Onboard(m.ctx, ob.raceDate, plans[ob.tierIdx].ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			if cfg, err := m.store.Config(m.ctx); err == nil {
				m.cfg = cfg
			}
			m.applyPlan(p)
			m.screen = ScreenToday
			m.focusToday()
			m.Message = fmt.Sprintf("Created %s plan for %s", p.PlanName, p.RaceDate)
		}
	}
	return m, nil
}

func (m MainModel) renderOnboarding() string {
	ob := m.onboarding
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Marathon Training Setup"))
	b.WriteString("\n\n")

	switch ob.step {
	case stepRaceDate:
		b.WriteString("When is your race?\n")
		b.WriteString(m.theme.Input.Render(ob.dateInput.View()))
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render("[enter] next  [esc] quit"))
	case stepTier:
		b.WriteString(fmt.Sprintf("Race day: %s\n", dayLabel(util.FormatDate(ob.raceDate))))
		if ob.warning != "" {
			b.WriteString(m.theme.Skipped.Render(ob.warning))
			b.WriteString("\n")
		}
		b.WriteString("\nChoose a plan:\n")
		for i, meta := range schedule.Plans() {
			line := fmt.Sprintf("%-16s %d runs/week, peak %d mi", meta.Name, meta.RunsPerWeek, meta.PeakMileage)
			if i == ob.tierIdx {
				b.WriteString(m.theme.Focused.Render("> " + line))
				b.WriteString("\n")
				b.WriteString(m.theme.Dim.Render(lipgloss.NewStyle().Width(config.DescriptionWidth).PaddingLeft(4).
					Render(meta.Description + " Best for: " + meta.BestFor)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Dim.Render("[j/k] choose  [enter] create plan  [esc] back"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Error.Render(m.err.Error()))
	}
	return m.theme.Base.Render(b.String())
}
