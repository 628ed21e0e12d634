package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "scroll", "jump")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar: "j/k:scroll gg/G:ends q:quit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, gg/G, etc.)
	Action []Hint // Action hints (:, Y, Enter)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeJump:
		return a.getJumpModeHints()
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal (scrolling the list).
func (a App) getNormalModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "scroll"},
			{Key: "^d/^u", Desc: "half page"},
			{Key: "gg/G", Desc: "top/bottom"},
		},
		Action: []Hint{
			{Key: ":", Desc: "jump"},
			{Key: "Y", Desc: "copy"},
		},
		System: []Hint{
			{Key: "?", Desc: "hints"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// getJumpModeHints returns hints for ModeJump (row number prompt).
func (a App) getJumpModeHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "0-9", Desc: "row"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "jump"},
		},
		System: []Hint{
			{Key: "Esc", Desc: "cancel"},
		},
	}
}
