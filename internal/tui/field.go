package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pwfield/internal/field"
	"github.com/jask/pwfield/internal/strength"
)

// fieldHeight is the number of lines View produces: title, three box lines
// and the indicator row.
const fieldHeight = 5

const (
	slotWidth   = 6
	slotGlyph   = "━"
	toggleShow  = "show"
	toggleHide  = "hide"
	toggleWidth = 6 // "(show)"
)

// Field is the terminal rendition of a password field. It turns key and
// mouse input into controller edits and redraws its indicators whenever the
// controller reports a change.
type Field struct {
	ctrl    *field.Controller
	keys    *KeyRegistry
	caret   cursor.Model
	title   string
	mask    string
	width   int
	originY int

	// text mirrors what the user sees; it only changes on accepted edits.
	text  string
	pos   int
	level strength.Level
	slots [strength.SlotCount]strength.Slot
	label string

	subs []field.Subscription
}

type FieldOptions struct {
	Title string
	Mask  string
	Width int
}

func NewField(ctrl *field.Controller, keys *KeyRegistry, opts FieldOptions) *Field {
	if opts.Mask == "" {
		opts.Mask = "•"
	}
	f := &Field{
		ctrl:  ctrl,
		keys:  keys,
		caret: cursor.New(),
		title: opts.Title,
		mask:  opts.Mask,
		width: opts.Width,
		text:  ctrl.Password(),
	}
	f.pos = utf8.RuneCountInString(f.text)
	f.caret.Style = lipgloss.NewStyle().Foreground(colorFocus)
	f.caret.TextStyle = textStyle
	f.refresh()

	f.subs = append(f.subs,
		ctrl.OnChange(f.refresh),
		ctrl.OnEditingEnd(f.caret.Blur),
	)
	return f
}

// refresh re-reads the controller after a change notification.
func (f *Field) refresh() {
	f.level = f.ctrl.Strength()
	f.slots = strength.Indicators(f.level)
	f.label = f.level.Label()
}

// Close detaches the field from its controller.
func (f *Field) Close() {
	for _, s := range f.subs {
		s.Cancel()
	}
	f.subs = nil
}

func (f *Field) Controller() *field.Controller { return f.ctrl }
func (f *Field) Value() string                 { return f.text }
func (f *Field) Cursor() int                   { return f.pos }
func (f *Field) Focused() bool                 { return f.ctrl.Focused() }
func (f *Field) Height() int                   { return fieldHeight }

// Indicators is the slot state drawn by the last change notification.
func (f *Field) Indicators() [strength.SlotCount]strength.Slot { return f.slots }

// SetOrigin tells the field which screen row its first line is drawn on, so
// mouse presses can be placed inside or outside it.
func (f *Field) SetOrigin(y int) { f.originY = y }

func (f *Field) SetWidth(w int) { f.width = w }

func (f *Field) Width() int { return f.width }

// Focus resumes editing.
func (f *Field) Focus() tea.Cmd {
	f.ctrl.Focus()
	return f.caret.Focus()
}

func (f *Field) Init() tea.Cmd {
	if f.ctrl.Focused() {
		return f.caret.Focus()
	}
	return nil
}

func (f *Field) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return f.handleMouse(msg)
	case tea.KeyMsg:
		if !f.ctrl.Focused() {
			return nil
		}
		return f.handleKey(msg)
	}
	var cmd tea.Cmd
	f.caret, cmd = f.caret.Update(msg)
	return cmd
}

func (f *Field) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	inside := msg.Y >= f.originY && msg.Y < f.originY+fieldHeight
	switch {
	case inside && !f.ctrl.Focused():
		return f.Focus()
	case !inside && f.ctrl.Focused():
		return f.submit(false)
	}
	return nil
}

func (f *Field) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := utf8.RuneCountInString(f.text)
	switch {
	case f.keys.IsAction(msg, ActionSubmit, ScopeField):
		return f.submit(true)
	case f.keys.IsAction(msg, ActionReveal, ScopeField):
		f.ctrl.ToggleReveal()
		return nil
	case f.keys.IsAction(msg, ActionClear, ScopeField):
		return f.edit(field.EditRange{Start: 0, End: n}, "")
	case f.keys.IsAction(msg, ActionKill, ScopeField):
		return f.edit(field.EditRange{Start: f.pos, End: n}, "")
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if f.pos == 0 {
			return nil
		}
		return f.edit(field.EditRange{Start: f.pos - 1, End: f.pos}, "")
	case tea.KeyDelete:
		if f.pos >= n {
			return nil
		}
		return f.edit(field.EditRange{Start: f.pos, End: f.pos + 1}, "")
	case tea.KeyLeft, tea.KeyCtrlB:
		f.pos = max(0, f.pos-1)
	case tea.KeyRight, tea.KeyCtrlF:
		f.pos = min(n, f.pos+1)
	case tea.KeyHome, tea.KeyCtrlA:
		f.pos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		f.pos = n
	case tea.KeySpace:
		return f.edit(field.Insertion(f.pos), " ")
	case tea.KeyRunes:
		ins := printable(msg.Runes)
		if ins == "" {
			return nil
		}
		return f.edit(field.Insertion(f.pos), ins)
	}
	return nil
}

// edit proposes the change and, when accepted, adopts the controller's value
// and leaves the cursor after the replacement.
func (f *Field) edit(r field.EditRange, replacement string) tea.Cmd {
	if !f.ctrl.ProposeEdit(f.text, r, replacement) {
		return nil
	}
	f.text = f.ctrl.Password()
	f.pos = r.Start + utf8.RuneCountInString(replacement)
	msg := ChangedMsg{FieldID: f.ctrl.ID(), Strength: f.ctrl.Strength()}
	return func() tea.Msg { return msg }
}

func (f *Field) submit(viaKey bool) tea.Cmd {
	f.ctrl.Submit()
	msg := SubmittedMsg{FieldID: f.ctrl.ID(), ViaKey: viaKey}
	return func() tea.Msg { return msg }
}

// printable drops control characters, which covers the line breaks a
// bracketed paste may carry.
func printable(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (f *Field) View() string {
	inner := max(1, f.width-4) // border + padding
	textWidth := max(1, inner-toggleWidth-1)

	text := f.renderText(textWidth)
	if w := ansi.StringWidth(text); w < textWidth {
		text += strings.Repeat(" ", textWidth-w)
	}
	toggle := toggleShow
	if f.ctrl.Revealed() {
		toggle = toggleHide
	}
	line := text + " " + toggleStyle.Render("("+toggle+")")

	border := colorBlurred
	if f.ctrl.Focused() {
		border = colorFocus
	}
	box := boxStyle.BorderForeground(border).Width(inner + 2).Render(line)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(f.title),
		box,
		f.renderIndicators(),
	)
}

// renderText draws at most width cells, scrolling so the caret stays in
// view.
func (f *Field) renderText(width int) string {
	display := []rune(f.text)
	if !f.ctrl.Revealed() {
		display = []rune(strings.Repeat(f.mask, len(display)))
	}
	pos := min(f.pos, len(display))
	caretCells := 0
	if f.ctrl.Focused() {
		caretCells = 1
	}
	start := 0
	if len(display)+caretCells > width {
		start = max(0, min(pos+caretCells-width, len(display)-width+caretCells))
	}
	end := min(len(display), start+width)
	if !f.ctrl.Focused() {
		return textStyle.Render(string(display[start:end]))
	}
	char := " "
	after := ""
	if pos < len(display) {
		char = string(display[pos])
		after = string(display[pos+1 : max(pos+1, end)])
	}
	f.caret.SetChar(char)
	return textStyle.Render(string(display[start:pos])) + f.caret.View() + textStyle.Render(after)
}

// indicatorSlotWidth shrinks the bars so the indicator row fits the field.
func (f *Field) indicatorSlotWidth() int {
	const labelCells = 2 + 6 // gap + longest label
	gaps := strength.SlotCount - 1
	return max(1, min(slotWidth, (f.width-labelCells-gaps)/strength.SlotCount))
}

func (f *Field) renderIndicators() string {
	colors := SlotColors(f.level)
	bar := strings.Repeat(slotGlyph, f.indicatorSlotWidth())
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, lipgloss.NewStyle().Foreground(c).Render(bar))
	}
	return strings.Join(parts, " ") + "  " + labelStyle.Render(f.label)
}
