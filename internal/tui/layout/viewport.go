package layout

// Scrollbar holds the thumb position of a vertical scrollbar, in rows.
type Scrollbar struct {
	Top  int
	Size int
}

// CalculateViewportHeight computes the list viewport height for a terminal.
// A terminal that has not been measured yet (height 0) yields 0 so the list
// starts from a degenerate window instead of a guessed one.
func CalculateViewportHeight(terminalHeight int, cfg ViewConfig) int {
	if terminalHeight <= 0 {
		return 0
	}
	height := terminalHeight - cfg.ChromeHeight
	if height < cfg.MinViewportHeight {
		return cfg.MinViewportHeight
	}
	return height
}

// CalculateContentWidth computes the width available for row content.
func CalculateContentWidth(terminalWidth int, cfg ViewConfig) int {
	width := terminalWidth - cfg.ScrollbarWidth - cfg.ContentPadding
	if width < 0 {
		return 0
	}
	return width
}

// CalculateScrollbar sizes the thumb proportionally to how much of extent is
// visible and places it proportionally to scrollTop.
func CalculateScrollbar(scrollTop, viewportHeight, extent int) Scrollbar {
	if viewportHeight <= 0 {
		return Scrollbar{}
	}
	if extent <= viewportHeight {
		return Scrollbar{Top: 0, Size: viewportHeight}
	}

	size := max(viewportHeight*viewportHeight/extent, 1)
	maxScroll := extent - viewportHeight
	scrollTop = min(max(scrollTop, 0), maxScroll)

	top := scrollTop * (viewportHeight - size) / maxScroll
	return Scrollbar{Top: top, Size: size}
}
