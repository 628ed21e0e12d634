package tui

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/vscroll/internal/tui/layout"
)

const (
	scrollbarTrack = "│"
	scrollbarThumb = "┃"
)

// renderView draws the viewport, the status line and the hint bar.
func (a App) renderView() string {
	lines := a.renderViewport()
	lines = append(lines, a.renderStatus(), a.renderBottomBar())
	return strings.Join(lines, "\n")
}

// renderViewport places every materialized row at its projected offset
// relative to the scroll position and clips it to the viewport.
func (a App) renderViewport() []string {
	frame := a.screen.frame
	height := a.screen.viewport.ClientHeight()
	if height <= 0 {
		return nil
	}

	rows := make([]string, height)
	for _, item := range frame.Items {
		for k, line := range item.Content {
			y := item.Top + k - frame.ScrollTop
			if y < 0 || y >= height {
				continue
			}
			rows[y] = line
		}
	}

	cfg := a.layout.View
	contentWidth := layout.CalculateContentWidth(a.width, cfg)
	gutter := strings.Repeat(" ", cfg.ContentPadding)
	bar := layout.CalculateScrollbar(frame.ScrollTop, height, frame.Extent)

	for y, row := range rows {
		thumb := a.styles.ScrollbarTrack.Render(scrollbarTrack)
		if y >= bar.Top && y < bar.Top+bar.Size {
			thumb = a.styles.ScrollbarThumb.Render(scrollbarThumb)
		}
		rows[y] = gutter + layout.PadRight(row, contentWidth) + thumb
	}
	return rows
}

// renderStatus shows the materialized range and offsets, or the jump prompt.
func (a App) renderStatus() string {
	if a.mode == ModeJump {
		return a.styles.Prompt.Render("Jump to row: ") + a.jump.Input.View()
	}

	frame := a.screen.frame
	status := fmt.Sprintf("rows %d-%d of %d  top %d/%d  rendered %d",
		frame.Range.Start, frame.Range.End, a.screen.list.Config().ItemCount,
		frame.ScrollTop, a.screen.viewport.MaxScrollTop(), a.screen.list.Renders())

	line := a.styles.Status.Render(status)
	if a.message != "" {
		line += "  " + a.styles.Message.Render(a.message)
	}
	return line
}

func (a App) renderBottomBar() string {
	if !a.showHints && a.mode == ModeNormal {
		return ""
	}
	return a.renderHints(a.getContextualHints())
}
