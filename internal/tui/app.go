package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/pwfield/internal/config"
	"github.com/jask/pwfield/internal/field"
	"github.com/jask/pwfield/internal/strength"
)

// headerLines is the number of rows drawn above the field.
const headerLines = 2

// App is a standalone prompt hosting a single Field. It finishes when the
// field is submitted from the keyboard and cancels on the quit keys.
type App struct {
	field  *Field
	keys   *KeyRegistry
	log    *zap.Logger
	width  int
	status string

	// maxField is the configured field width; narrower windows shrink it.
	maxField int

	done      bool
	cancelled bool
}

func NewApp(cfg config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	keys := NewKeyRegistry(DefaultBindings(cfg.Keys))
	ctrl := field.New(field.WithLogger(log), field.WithRevealed(cfg.UI.StartRevealed))
	f := NewField(ctrl, keys, FieldOptions{
		Title: cfg.UI.Title,
		Mask:  cfg.UI.MaskChar,
		Width: cfg.UI.Width,
	})
	f.SetOrigin(headerLines)
	return &App{field: f, keys: keys, log: log, width: cfg.UI.Width, maxField: cfg.UI.Width}
}

func (a *App) Field() *Field { return a.field }

// Result reports the submitted password and its strength. ok is false when
// the prompt was cancelled or is still running.
func (a *App) Result() (password string, level strength.Level, ok bool) {
	if !a.done || a.cancelled {
		return "", strength.None, false
	}
	ctrl := a.field.Controller()
	return ctrl.Password(), ctrl.Strength(), true
}

func (a *App) Init() tea.Cmd {
	return a.field.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.field.SetWidth(max(1, min(m.Width, a.maxField)))
		return a, nil
	case tea.KeyMsg:
		if a.keys.IsAction(m, ActionQuit, ScopeApp) {
			a.cancelled = true
			a.field.Close()
			a.log.Info("prompt cancelled")
			return a, tea.Quit
		}
		if !a.field.Focused() {
			// typing into a blurred prompt picks editing back up
			focus := a.field.Focus()
			return a, tea.Batch(focus, a.field.Update(m))
		}
	case ChangedMsg:
		a.status = "strength: " + m.Strength.Label()
		return a, nil
	case SubmittedMsg:
		if !m.ViaKey {
			a.status = "click the field or type to keep editing"
			return a, nil
		}
		a.done = true
		a.field.Close()
		_, level, _ := a.Result()
		a.log.Info("prompt submitted", zap.Stringer("strength", level))
		return a, tea.Quit
	}
	return a, a.field.Update(msg)
}

func (a *App) View() string {
	if a.done || a.cancelled {
		return ""
	}
	scope := ScopeApp
	if a.field.Focused() {
		scope = ScopeField
	}
	lines := []string{
		headerStyle.Render("pwfield"),
		"",
		a.field.View(),
		"",
		RenderStatusBar(a.status, a.width),
		RenderFooter(a.keys, scope, a.width),
	}
	return strings.Join(lines, "\n")
}
