package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	RowIndex       lipgloss.Style // "#00042" label at the start of a card
	Username       lipgloss.Style
	Email          lipgloss.Style
	Detail         lipgloss.Style // id, avatar and password lines
	Error          lipgloss.Style // rows the source failed to load
	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
	Status         lipgloss.Style
	Message        lipgloss.Style // transient feedback after an action
	Prompt         lipgloss.Style
	HintKey        lipgloss.Style // Key portion of hints (e.g., ":", "j/k")
	HintDesc       lipgloss.Style // Description portion of hints (e.g., "jump", "scroll")
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	track := lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}
	danger := lipgloss.AdaptiveColor{Light: "#8A4A4A", Dark: "#A06A6A"}

	return Styles{
		RowIndex: lipgloss.NewStyle().
			Foreground(subtle),

		Username: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Email: lipgloss.NewStyle().
			Foreground(primary),

		Detail: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		ScrollbarTrack: lipgloss.NewStyle().
			Foreground(track),

		ScrollbarThumb: lipgloss.NewStyle().
			Foreground(accent),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Message: lipgloss.NewStyle().
			Foreground(accent),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
