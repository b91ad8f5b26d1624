package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Run       lipgloss.Style
	Pace      lipgloss.Style
	Race      lipgloss.Style
	Rest      lipgloss.Style
	Cross     lipgloss.Style
	Completed lipgloss.Style
	Skipped   lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	config.ThemeDark: {
		Name:      "Dark",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Run:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Pace:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Race:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Rest:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cross:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	config.ThemeLight: {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("25"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
		Run:       lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Pace:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
		Race:      lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
		Rest:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cross:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Strikethrough(true),
		Skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Italic(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("161")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	},
}

// ThemeFor resolves a preference to a theme; "system" follows the terminal background.
func ThemeFor(pref string) Theme {
	switch config.NormalizeTheme(pref) {
	case config.ThemeLight:
		return Themes[config.ThemeLight]
	case config.ThemeDark:
		return Themes[config.ThemeDark]
	}
	if lipgloss.HasDarkBackground() {
		return Themes[config.ThemeDark]
	}
	return Themes[config.ThemeLight]
}

// WorkoutStyle picks the style for a workout's type and state.
func (t Theme) WorkoutStyle(w models.Workout) lipgloss.Style {
	switch {
	case w.IsCompleted:
		return t.Completed
	case w.IsSkipped:
		return t.Skipped
	}
	switch w.Type {
	case models.WorkoutPace:
		return t.Pace
	case models.WorkoutRace:
		return t.Race
	case models.WorkoutRest:
		return t.Rest
	case models.WorkoutCross:
		return t.Cross
	default:
		return t.Run
	}
}
