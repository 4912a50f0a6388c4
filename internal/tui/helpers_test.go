package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pwfield/internal/config"
	"github.com/jask/pwfield/internal/field"
)

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{Title: "Password", MaskChar: "•", Width: 40},
		Keys: config.KeysConfig{
			Reveal: []string{"ctrl+r"},
			Submit: []string{"enter"},
			Clear:  []string{"ctrl+u"},
			Kill:   []string{"ctrl+k"},
			Quit:   []string{"esc", "ctrl+c"},
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

func newTestField(t *testing.T) *Field {
	t.Helper()
	cfg := testConfig()
	keys := NewKeyRegistry(DefaultBindings(cfg.Keys))
	f := NewField(field.New(), keys, FieldOptions{Title: cfg.UI.Title, Mask: cfg.UI.MaskChar, Width: cfg.UI.Width})
	t.Cleanup(f.Close)
	return f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(f *Field, s string) {
	for _, r := range s {
		f.Update(runes(string(r)))
	}
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
