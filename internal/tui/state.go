package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/vscroll/internal/tui/layout"
)

// Mode is what the keyboard currently drives.
type Mode int

const (
	ModeNormal Mode = iota
	ModeJump
)

// JumpState holds the row number prompt opened with ":".
type JumpState struct {
	Input textinput.Model
}

// NewJumpState creates a new JumpState with initialized input.
func NewJumpState(cfg layout.LayoutConfig) JumpState {
	input := textinput.New()
	input.Placeholder = "row"
	input.CharLimit = cfg.Input.JumpCharLimit
	input.Width = cfg.Input.JumpWidth
	input.Prompt = ""

	return JumpState{Input: input}
}

// Reset clears the prompt for a new jump.
func (j *JumpState) Reset() {
	j.Input.Reset()
	j.Input.Blur()
}
