package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/util"
)

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Width = 40
	return ti
}

const (
	fieldDistance = iota
	fieldDuration
	fieldEffort
	fieldNotes
	fieldCount
)

var detailLabels = [fieldCount]string{"Distance", "Duration (min)", "Effort (1-5)", "Notes"}

type detailsForm struct {
	inputs [fieldCount]textinput.Model
	active int
}

func newDetailsForm() detailsForm {
	var f detailsForm
	f.inputs[fieldDistance] = newTextInput("0", 8)
	f.inputs[fieldDuration] = newTextInput("0", 6)
	f.inputs[fieldEffort] = newTextInput("3", 1)
	f.inputs[fieldNotes] = newTextInput("How did it feel?", config.MaxNotesLength)
	return f
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// fill seeds the inputs from what was already logged for w.
func (f *detailsForm) fill(w models.Workout, units string) {
	if w.ActualDistance != nil {
		f.inputs[fieldDistance].SetValue(formatNumber(progress.ToDisplayDistance(*w.ActualDistance, units)))
	}
	if w.ActualDuration != nil {
		f.inputs[fieldDuration].SetValue(formatNumber(*w.ActualDuration))
	}
	if w.PerceivedEffort != nil {
		f.inputs[fieldEffort].SetValue(strconv.Itoa(*w.PerceivedEffort))
	}
	f.inputs[fieldNotes].SetValue(w.Notes)
}

func (f *detailsForm) focus() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.active].Focus()
}

func (f *detailsForm) move(delta int) tea.Cmd {
	f.active = (f.active + delta + fieldCount) % fieldCount
	return f.focus()
}

func (f detailsForm) update(msg tea.Msg) (detailsForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return f, cmd
}

// parse converts the inputs into a partial update. Blank numeric fields are left unset.
func (f detailsForm) parse(units string) (models.WorkoutDetails, error) {
	var d models.WorkoutDetails
	if s := strings.TrimSpace(f.inputs[fieldDistance].Value()); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return d, fmt.Errorf("%w: distance %q", models.ErrInvalidDetails, s)
		}
		if units == config.UnitsKm {
			v /= config.KilometersPerMile
		}
		d.ActualDistance = &v
	}
	if s := strings.TrimSpace(f.inputs[fieldDuration].Value()); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return d, fmt.Errorf("%w: duration %q", models.ErrInvalidDetails, s)
		}
		d.ActualDuration = &v
	}
	if s := strings.TrimSpace(f.inputs[fieldEffort].Value()); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return d, fmt.Errorf("%w: effort %q", models.ErrInvalidDetails, s)
		}
		d.PerceivedEffort = &v
	}
	notes := strings.TrimSpace(f.inputs[fieldNotes].Value())
	d.Notes = &notes
	return d, d.Validate()
}

func (m MainModel) closeModal() MainModel {
	m.modal = modalNone
	m.targetID = ""
	m.input.Blur()
	return m
}

func (m MainModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.err = nil
		return m.closeModal(), nil
	}

	switch m.modal {
	case modalSkip:
		if key == "enter" {
			p, err := m.store.Skip(m.ctx, m.targetID, strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.err = err
				return m, nil
			}
			m.applyPlan(p)
			m.Message = "Workout skipped"
			return m.closeModal(), nil
		}

	case modalDetails:
		switch key {
		case "tab", "down":
			cmd := m.details.move(1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.details.move(-1)
			return m, cmd
		case "enter":
			d, err := m.details.parse(m.cfg.Units)
			if err != nil {
				m.err = err
				return m, nil
			}
			p, err := m.store.UpdateDetails(m.ctx, m.targetID, d)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.applyPlan(p)
			m.Message = "Details saved"
			return m.closeModal(), nil
		}
		var cmd tea.Cmd
		m.details, cmd = m.details.update(msg)
		return m, cmd

	case modalSearch:
		switch key {
		case "up", "ctrl+p":
			m.search.cursor = util.Clamp(m.search.cursor-1, 0, len(m.search.results)-1)
			return m, nil
		case "down", "ctrl+n":
			m.search.cursor = util.Clamp(m.search.cursor+1, 0, len(m.search.results)-1)
			return m, nil
		case "enter":
			if len(m.search.results) > 0 {
				r := m.search.results[m.search.cursor]
				m.weekIdx = r.weekIdx
				m.dayIdx = r.dayIdx
			}
			return m.closeModal(), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.search = newSearchState(m.plan, m.input.Value())
		return m, cmd

	case modalPassphrase:
		if key == "enter" {
			pass := m.input.Value()
			if err := util.ValidatePassphrase(pass); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m = m.exportBackup(pass)
			return m.closeModal(), nil
		}

	case modalConfirmReset:
		if key == "y" || key == "Y" {
			if err := m.store.Reset(m.ctx); err != nil {
				m.err = err
				return m.closeModal(), nil
			}
			cfg, err := m.store.Config(m.ctx)
			if err != nil {
				cfg = models.DefaultUserConfig()
			}
			m.cfg = cfg
			m.theme = ThemeFor(cfg.Theme)
			m.applyPlan(nil)
			m.weekIdx, m.dayIdx = 0, 0
			m.startOnboarding()
			m.Message = "Plan reset"
			cmd := m.onboarding.dateInput.Focus()
			return m, cmd
		}
		m.Message = "Reset cancelled"
		return m.closeModal(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) renderModal() string {
	var b strings.Builder
	switch m.modal {
	case modalSkip:
		b.WriteString(m.theme.Header.Render("Skip workout"))
		b.WriteString("\n" + m.input.View())
		b.WriteString("\n" + m.theme.Dim.Render("[enter] skip  [esc] cancel"))
	case modalDetails:
		b.WriteString(m.theme.Header.Render("Log details"))
		for i, in := range m.details.inputs {
			label := detailLabels[i]
			if i == fieldDistance {
				label += " (" + progress.UnitLabel(m.cfg.Units) + ")"
			}
			style := m.theme.Dim
			if i == m.details.active {
				style = m.theme.Focused
			}
			b.WriteString(fmt.Sprintf("\n%s\n%s", style.Render(label), in.View()))
		}
		b.WriteString("\n" + m.theme.Dim.Render("[tab] next field  [enter] save  [esc] cancel"))
	case modalSearch:
		b.WriteString(m.theme.Header.Render("Search workouts"))
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(m.renderSearchResults())
	case modalPassphrase:
		b.WriteString(m.theme.Header.Render("Encrypt backup"))
		b.WriteString("\n" + m.input.View())
		b.WriteString("\n" + m.theme.Dim.Render("[enter] export  [esc] cancel"))
	case modalConfirmReset:
		b.WriteString(m.theme.Error.Render("Delete your plan and all progress?"))
		b.WriteString("\n" + m.theme.Dim.Render("[y] reset  [any other key] cancel"))
	}
	return m.theme.Input.Render(b.String())
}
