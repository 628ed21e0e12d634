package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	View  ViewConfig
	Input InputConfig
	Text  TextConfig
}

// ViewConfig holds the dimensions of the list screen.
type ViewConfig struct {
	// ChromeHeight is subtracted from terminal height for the list viewport.
	// Accounts for: status line (1) + hint bar (1) = 2
	ChromeHeight int

	// MinViewportHeight is the smallest viewport handed to the tracker once
	// the terminal has been measured.
	MinViewportHeight int

	// ScrollbarWidth is the column reserved on the right for the scrollbar.
	ScrollbarWidth int

	// ContentPadding is the left gutter before row content.
	ContentPadding int

	// WheelStep is how many lines one mouse wheel notch scrolls.
	WheelStep int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	JumpCharLimit int
	JumpWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		View: ViewConfig{
			ChromeHeight:      2, // status line (1) + hint bar (1)
			MinViewportHeight: 1,
			ScrollbarWidth:    1,
			ContentPadding:    1,
			WheelStep:         3,
		},
		Input: InputConfig{
			JumpCharLimit: 9,
			JumpWidth:     12,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
