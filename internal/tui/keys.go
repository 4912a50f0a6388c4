package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pwfield/internal/config"
)

const (
	ActionReveal = "reveal"
	ActionSubmit = "submit"
	ActionClear  = "clear"
	ActionKill   = "kill"
	ActionQuit   = "quit"
)

const (
	ScopeField = "field"
	ScopeApp   = "app"
)

// KeyBinding ties a bubbles key.Binding to an action and the scopes it
// applies in. No scopes means every scope.
type KeyBinding struct {
	Binding key.Binding
	Action  string
	Scopes  []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// NewBinding normalises keys and uses the first one as the help key.
func NewBinding(action, desc string, keys []string, scopes ...string) KeyBinding {
	norm := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" {
			norm = append(norm, k)
		}
	}
	opts := []key.BindingOpt{key.WithKeys(norm...)}
	if len(norm) > 0 {
		opts = append(opts, key.WithHelp(norm[0], desc))
	}
	return KeyBinding{Binding: key.NewBinding(opts...), Action: action, Scopes: scopes}
}

// DefaultBindings builds the registry contents from configured keys.
func DefaultBindings(k config.KeysConfig) []KeyBinding {
	return []KeyBinding{
		NewBinding(ActionSubmit, "submit", k.Submit, ScopeField),
		NewBinding(ActionReveal, "show/hide", k.Reveal, ScopeField),
		NewBinding(ActionClear, "clear", k.Clear, ScopeField),
		NewBinding(ActionKill, "kill to end", k.Kill, ScopeField),
		NewBinding(ActionQuit, "cancel", k.Quit, "*"),
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
