// Package field holds the state behind a password entry field: the accepted
// text, its strength, the reveal flag and editing focus.
//
// A Controller is driven from a single goroutine (the Bubble Tea update
// loop) and is not safe for concurrent use.
package field

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/pwfield/internal/strength"
)

type Controller struct {
	id       string
	password string
	strength strength.Level
	revealed bool
	focused  bool
	log      *zap.Logger

	changed    listeners[func()]
	visibility listeners[func(revealed bool)]
	editEnd    listeners[func()]
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRevealed sets the initial reveal state.
func WithRevealed(revealed bool) Option {
	return func(c *Controller) { c.revealed = revealed }
}

func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// New returns an empty, focused, masked controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		strength: strength.None,
		focused:  true,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("field_id", c.id))
	return c
}

func (c *Controller) ID() string               { return c.id }
func (c *Controller) Password() string         { return c.password }
func (c *Controller) Strength() strength.Level { return c.strength }
func (c *Controller) Revealed() bool           { return c.revealed }
func (c *Controller) Focused() bool            { return c.focused }

// ProposeEdit applies replacement over r in oldText and reports whether the
// host may show the result. Accepted edits replace the password, reclassify
// it and notify change listeners before returning. Results longer than
// strength.MaxPasswordLength, and ranges outside oldText, are refused with
// no state change.
func (c *Controller) ProposeEdit(oldText string, r EditRange, replacement string) bool {
	newText, ok := applyEdit(oldText, r, replacement)
	if !ok {
		c.log.Debug("edit refused: range out of bounds",
			zap.Int("start", r.Start), zap.Int("end", r.End),
			zap.Int("old_len", utf8.RuneCountInString(oldText)))
		return false
	}
	n := utf8.RuneCountInString(newText)
	if n > strength.MaxPasswordLength {
		c.log.Debug("edit refused: too long",
			zap.Int("len", n), zap.Int("max", strength.MaxPasswordLength))
		return false
	}

	prev := c.strength
	c.password = newText
	c.strength = strength.Classify(n)
	if c.strength != prev {
		c.log.Debug("strength changed",
			zap.Stringer("from", prev), zap.Stringer("to", c.strength), zap.Int("len", n))
	}

	for _, fn := range c.changed.snapshot() {
		fn()
	}
	return true
}

// ToggleReveal flips between masked and plain display. Password state and
// change listeners are untouched.
func (c *Controller) ToggleReveal() {
	c.revealed = !c.revealed
	c.log.Debug("reveal toggled", zap.Bool("revealed", c.revealed))
	for _, fn := range c.visibility.snapshot() {
		fn(c.revealed)
	}
}

// Submit ends editing. The host should release input focus.
func (c *Controller) Submit() {
	c.focused = false
	c.log.Debug("editing ended", zap.Stringer("strength", c.strength))
	for _, fn := range c.editEnd.snapshot() {
		fn()
	}
}

// Focus resumes editing after Submit.
func (c *Controller) Focus() {
	c.focused = true
}

// OnChange registers fn to run after every accepted edit. Listeners run
// synchronously in registration order; fn should re-read Password and
// Strength.
func (c *Controller) OnChange(fn func()) Subscription {
	return c.changed.add(fn)
}

func (c *Controller) OnVisibilityChange(fn func(revealed bool)) Subscription {
	return c.visibility.add(fn)
}

func (c *Controller) OnEditingEnd(fn func()) Subscription {
	return c.editEnd.add(fn)
}
