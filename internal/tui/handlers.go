package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
)

var workoutScreens = []Screen{ScreenToday, ScreenCalendar}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	for i, s := range mainScreens {
		screen := s
		r.Register(KeyBinding{
			Key:      string(rune('1' + i)),
			Priority: 10,
			Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
				m.screen = screen
				return m, nil, true
			},
		})
	}
	r.Register(KeyBinding{Key: "tab", Description: "screens", Priority: 10, Handler: handleNextScreen})
	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	}})

	r.Register(KeyBinding{Key: "c", Description: "complete", Screens: workoutScreens, Priority: 5, Handler: handleToggle})
	r.Register(KeyBinding{Key: " ", Screens: workoutScreens, Priority: 5, Handler: handleToggle})
	r.Register(KeyBinding{Key: "s", Description: "skip", Screens: workoutScreens, Priority: 5, Handler: handleSkip})
	r.Register(KeyBinding{Key: "d", Description: "log details", Screens: workoutScreens, Priority: 5, Handler: handleDetails})

	calendar := []Screen{ScreenCalendar}
	for _, k := range []string{"left", "h"} {
		r.Register(KeyBinding{Key: k, Description: "prev week", Screens: calendar, Handler: moveWeek(-1)})
	}
	for _, k := range []string{"right", "l"} {
		r.Register(KeyBinding{Key: k, Description: "next week", Screens: calendar, Handler: moveWeek(1)})
	}
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Screens: calendar, Handler: moveDay(-1)})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Screens: calendar, Handler: moveDay(1)})
	}
	r.Register(KeyBinding{Key: "t", Description: "today", Screens: calendar, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.focusToday()
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "/", Description: "search", Screens: calendar, Handler: handleSearch})

	settings := []Screen{ScreenSettings}
	r.Register(KeyBinding{Key: "u", Description: "units", Screens: settings, Handler: handleUnits})
	r.Register(KeyBinding{Key: "m", Description: "theme", Screens: settings, Handler: handleTheme})
	r.Register(KeyBinding{Key: "e", Description: "export", Screens: settings, Handler: handleExport})
	r.Register(KeyBinding{Key: "E", Description: "encrypted export", Screens: settings, Handler: handleEncryptedExport})
	r.Register(KeyBinding{Key: "p", Description: "pdf", Screens: settings, Handler: handleReport})
	r.Register(KeyBinding{Key: "R", Description: "reset", Screens: settings, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.modal = modalConfirmReset
		return m, nil, true
	}})

	return r
}

func handleNextScreen(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	for i, s := range mainScreens {
		if s == m.screen {
			m.screen = mainScreens[(i+1)%len(mainScreens)]
			return m, nil, true
		}
	}
	m.screen = ScreenToday
	return m, nil, true
}

func handleToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	w := m.selectedWorkout()
	if w == nil {
		return m, nil, true
	}
	p, err := m.store.ToggleCompletion(m.ctx, w.ID)
	if err != nil {
		m.err = err
		return m, nil, true
	}
	m.applyPlan(p)
	if next, _, err := p.Workout(w.ID); err == nil && next.IsCompleted {
		m.Message = "Completed: " + next.Title
	} else {
		m.Message = "Marked pending: " + w.Title
	}
	return m, nil, true
}

func handleSkip(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	w := m.selectedWorkout()
	if w == nil {
		return m, nil, true
	}
	m.targetID = w.ID
	m.modal = modalSkip
	m.input = newTextInput("Reason (optional)", config.MaxNotesLength)
	cmd := m.input.Focus()
	return m, cmd, true
}

func handleDetails(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	w := m.selectedWorkout()
	if w == nil || w.Type == models.WorkoutRest {
		return m, nil, true
	}
	m.targetID = w.ID
	m.modal = modalDetails
	m.details = newDetailsForm()
	m.details.fill(*w, m.cfg.Units)
	cmd := m.details.focus()
	return m, cmd, true
}

func handleSearch(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.modal = modalSearch
	m.search = searchState{}
	m.input = newTextInput("type:pace status:pending week:5 hill", 0)
	cmd := m.input.Focus()
	return m, cmd, true
}

func moveWeek(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if m.plan == nil {
			return m, nil, true
		}
		m.weekIdx = (m.weekIdx + delta + len(m.plan.Weeks)) % len(m.plan.Weeks)
		return m, nil, true
	}
}

// moveDay walks the cursor across days, crossing into adjacent weeks.
func moveDay(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if m.plan == nil {
			return m, nil, true
		}
		idx := m.weekIdx*config.DaysPerWeek + m.dayIdx + delta
		total := len(m.plan.Weeks) * config.DaysPerWeek
		if idx < 0 || idx >= total {
			return m, nil, true
		}
		m.weekIdx = idx / config.DaysPerWeek
		m.dayIdx = idx % config.DaysPerWeek
		return m, nil, true
	}
}

func handleUnits(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := config.UnitsKm
	if m.cfg.Units == config.UnitsKm {
		next = config.UnitsMiles
	}
	cfg, err := m.store.SetUnits(m.ctx, next)
	if err != nil {
		m.err = err
		return m, nil, true
	}
	m.cfg = cfg
	m.Message = "Units: " + cfg.Units
	return m, nil, true
}

var themeCycle = []string{config.ThemeSystem, config.ThemeLight, config.ThemeDark}

func handleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := themeCycle[0]
	for i, t := range themeCycle {
		if t == m.cfg.Theme {
			next = themeCycle[(i+1)%len(themeCycle)]
		}
	}
	cfg, err := m.store.SetTheme(m.ctx, next)
	if err != nil {
		m.err = err
		return m, nil, true
	}
	m.cfg = cfg
	m.theme = ThemeFor(cfg.Theme)
	m.Message = "Theme: " + cfg.Theme
	return m, nil, true
}

func handleExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m = m.exportBackup("")
	return m, nil, true
}

func handleEncryptedExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.modal = modalPassphrase
	m.input = newTextInput("Passphrase", 0)
	m.input.EchoMode = textinput.EchoPassword
	m.input.EchoCharacter = '•'
	cmd := m.input.Focus()
	return m, cmd, true
}

func handleReport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m = m.writeReport()
	return m, nil, true
}
