package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pwfield/internal/config"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings(testConfig().Keys))

	if !reg.IsAction(keyMsg(tea.KeyCtrlR), ActionReveal, ScopeField) {
		t.Fatalf("expected ctrl+r to reveal in the field")
	}
	if reg.IsAction(keyMsg(tea.KeyCtrlR), ActionReveal, ScopeApp) {
		t.Fatalf("did not expect reveal outside the field")
	}
	if !reg.IsAction(keyMsg(tea.KeyEsc), ActionQuit, ScopeField) {
		t.Fatalf("expected esc to match wildcard quit")
	}
	if !reg.IsAction(keyMsg(tea.KeyCtrlC), ActionQuit, ScopeApp) {
		t.Fatalf("expected ctrl+c to quit")
	}
	if reg.IsAction(runes("q"), ActionQuit, ScopeApp) {
		t.Fatalf("q must stay typeable")
	}
}

func TestKeyRegistryConfiguredKeys(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings(config.KeysConfig{
		Reveal: []string{" F2 "},
		Submit: []string{"ctrl+s"},
		Quit:   []string{"ctrl+q"},
	}))

	if !reg.IsAction(keyMsg(tea.KeyF2), ActionReveal, ScopeField) {
		t.Fatalf("expected normalised f2 binding")
	}
	if !reg.IsAction(keyMsg(tea.KeyCtrlS), ActionSubmit, ScopeField) {
		t.Fatalf("expected ctrl+s to submit")
	}
	if reg.IsAction(keyMsg(tea.KeyEnter), ActionSubmit, ScopeField) {
		t.Fatalf("enter should no longer submit")
	}
	if reg.IsAction(keyMsg(tea.KeyCtrlU), ActionClear, ScopeField) {
		t.Fatalf("clear has no keys configured")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings(testConfig().Keys))
	if got := len(reg.BindingsForScope(ScopeField)); got != 5 {
		t.Fatalf("field bindings = %d, want 5", got)
	}
	app := reg.BindingsForScope(ScopeApp)
	if len(app) != 1 || app[0].Action != ActionQuit {
		t.Fatalf("app bindings = %+v", app)
	}
}

func TestKeyBindingWithoutKeysNeverMatches(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{NewBinding(ActionClear, "clear", []string{"  "}, ScopeField)})
	for _, msg := range []tea.KeyMsg{keyMsg(tea.KeyCtrlU), runes(" "), keyMsg(tea.KeySpace)} {
		if reg.IsAction(msg, ActionClear, ScopeField) {
			t.Fatalf("empty binding matched %q", msg.String())
		}
	}
}

func TestKeyBindingDisabled(t *testing.T) {
	b := NewBinding(ActionReveal, "show/hide", []string{"ctrl+r"}, ScopeField)
	b.Binding.SetEnabled(false)
	reg := NewKeyRegistry([]KeyBinding{b})
	if reg.IsAction(keyMsg(tea.KeyCtrlR), ActionReveal, ScopeField) {
		t.Fatalf("disabled binding still matches")
	}
}

func TestNewBindingHelp(t *testing.T) {
	b := NewBinding(ActionSubmit, "submit", []string{" Ctrl+S ", "enter"}, ScopeField)
	if h := b.Binding.Help(); h.Key != "ctrl+s" || h.Desc != "submit" {
		t.Fatalf("help = %+v", h)
	}
	if keys := b.Binding.Keys(); len(keys) != 2 || keys[1] != "enter" {
		t.Fatalf("keys = %v", keys)
	}
}
