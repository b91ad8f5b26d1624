// Package tui is the interactive terminal front end built on bubbletea.
package tui

import (
	"context"
	"errors"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/store"
	"github.com/akyairhashvil/marathon/internal/util"
)

// Screen is the top-level view being shown.
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenToday
	ScreenCalendar
	ScreenProgress
	ScreenSettings
)

var mainScreens = []Screen{ScreenToday, ScreenCalendar, ScreenProgress, ScreenSettings}

func (s Screen) String() string {
	switch s {
	case ScreenOnboarding:
		return "Setup"
	case ScreenToday:
		return "Today"
	case ScreenCalendar:
		return "Calendar"
	case ScreenProgress:
		return "Progress"
	case ScreenSettings:
		return "Settings"
	}
	return "?"
}

type modalKind int

const (
	modalNone modalKind = iota
	modalSkip
	modalDetails
	modalSearch
	modalPassphrase
	modalConfirmReset
)

// Options configures side outputs of the settings screen.
type Options struct {
	ReportsDir string
	Backups    BackupExporter
}

// MainModel is the root bubbletea model.
type MainModel struct {
	ctx      context.Context
	store    PlanStore
	opts     Options
	registry *HandlerRegistry

	screen Screen
	plan   *models.TrainingPlan
	stats  models.PlanStats
	cfg    models.UserConfig
	theme  Theme

	onboarding onboardingState
	weekIdx    int
	dayIdx     int

	modal    modalKind
	input    textinput.Model
	details  detailsForm
	search   searchState
	targetID string

	progress progressbar.Model
	err      error
	Message  string
	width    int
	height   int
}

func NewMainModel(ctx context.Context, s PlanStore, opts Options) MainModel {
	m := MainModel{
		ctx:      ctx,
		store:    s,
		opts:     opts,
		registry: defaultRegistry(),
		progress: progressbar.New(progressbar.WithDefaultGradient()),
		input:    textinput.New(),
		details:  newDetailsForm(),
	}
	m.progress.Width = 40

	cfg, err := s.Config(ctx)
	if err != nil {
		util.LogError("load user config", err)
		m.err = err
		cfg = models.DefaultUserConfig()
	}
	m.cfg = cfg
	m.theme = ThemeFor(cfg.Theme)

	p, err := s.Plan(ctx)
	switch {
	case errors.Is(err, store.ErrNoPlan):
		m.startOnboarding()
	case err != nil:
		util.LogError("load plan", err)
		m.err = err
		m.startOnboarding()
	case !cfg.IsOnboarded:
		m.startOnboarding()
	default:
		m.applyPlan(p)
		m.screen = ScreenToday
		m.focusToday()
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = util.Clamp(msg.Width-30, 10, 60)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == ScreenOnboarding {
			return m.updateOnboarding(msg)
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		m.err = nil
		next, cmd, _ := m.registry.Handle(m, msg.String())
		return next, cmd
	}

	var cmd tea.Cmd
	switch {
	case m.screen == ScreenOnboarding:
		m.onboarding.dateInput, cmd = m.onboarding.dateInput.Update(msg)
	case m.modal == modalDetails:
		m.details, cmd = m.details.update(msg)
	case m.modal != modalNone:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// applyPlan installs p and recomputes the derived stats.
func (m *MainModel) applyPlan(p *models.TrainingPlan) {
	m.plan = p
	m.stats = progress.Compute(p, m.store.Today())
	if p != nil {
		m.weekIdx = util.Clamp(m.weekIdx, 0, len(p.Weeks)-1)
	}
}

// focusToday points the calendar cursor at today, or the pinned week.
func (m *MainModel) focusToday() {
	if m.plan == nil || len(m.plan.Weeks) == 0 {
		return
	}
	today := m.store.Today()
	week := progress.CurrentWeek(m.plan, today)
	m.weekIdx = week.WeekNumber - 1
	m.dayIdx = 0
	todayStr := util.FormatDate(today)
	for i, w := range week.Workouts {
		if w.Date == todayStr {
			m.dayIdx = i
		}
	}
}

// selectedWorkout is the workout actions apply to on the current screen.
func (m MainModel) selectedWorkout() *models.Workout {
	if m.plan == nil {
		return nil
	}
	switch m.screen {
	case ScreenToday:
		w, _, _ := progress.TodayWorkout(m.plan, m.store.Today())
		return w
	case ScreenCalendar:
		if m.weekIdx < len(m.plan.Weeks) {
			week := &m.plan.Weeks[m.weekIdx]
			if m.dayIdx < len(week.Workouts) {
				return &week.Workouts[m.dayIdx]
			}
		}
	}
	return nil
}
