package tui

import "github.com/jask/pwfield/internal/strength"

// ChangedMsg follows every accepted edit of a field.
type ChangedMsg struct {
	FieldID  string
	Strength strength.Level
}

// SubmittedMsg follows the end of editing. ViaKey is false when focus was
// released by a click outside the field.
type SubmittedMsg struct {
	FieldID string
	ViaKey  bool
}
