package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriorityAndScope(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	mk := func(name string, handled bool) KeyHandler {
		return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, handled
		}
	}
	r.Register(KeyBinding{Key: "x", Handler: mk("low", true), Description: "low"})
	r.Register(KeyBinding{Key: "x", Handler: mk("high", false), Priority: 5})
	r.Register(KeyBinding{Key: "x", Handler: mk("settings", true), Screens: []Screen{ScreenSettings}, Priority: 9})

	m := MainModel{screen: ScreenToday}
	if _, _, ok := r.Handle(m, "x"); !ok {
		t.Fatalf("expected x to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, ok := r.Handle(m, "y"); ok {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestDefaultRegistryHelp(t *testing.T) {
	r := defaultRegistry()
	help := r.HelpFor(ScreenCalendar)
	for _, want := range []string{"[/]search", "[c]complete", "[t]today"} {
		if !strings.Contains(help, want) {
			t.Fatalf("calendar help missing %q: %s", want, help)
		}
	}
	if strings.Contains(help, "units") {
		t.Fatalf("calendar help should not list settings keys: %s", help)
	}
	if !strings.Contains(r.HelpFor(ScreenSettings), "[p]pdf") {
		t.Fatalf("settings help missing pdf")
	}
}
