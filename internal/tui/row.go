package tui

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/storage"
	"github.com/nikbrunner/vscroll/internal/tui/layout"
	"github.com/nikbrunner/vscroll/internal/window"
)

// rowRenderer builds the renderer for cards of the given width. Each row is
// exactly height lines so it fills the slot the projector gives it.
func rowRenderer(source storage.Source, width, height int, styles Styles, text layout.TextConfig) window.RenderFunc[[]string] {
	return func(index int) []string {
		user, err := source.At(index)
		if err != nil {
			return errorCard(index, err, width, height, styles, text)
		}
		return userCard(index, user, width, height, styles, text)
	}
}

// rowLabel is the fixed-width "#00042 " prefix of a card header.
func rowLabel(index int) string {
	return fmt.Sprintf("#%05d ", index)
}

func userCard(index int, u model.User, width, height int, styles Styles, text layout.TextConfig) []string {
	label := rowLabel(index)
	header, _ := layout.TruncateWithPrefixSuffix(u.Username, width, label, "", text)
	if rest, ok := strings.CutPrefix(header, label); ok {
		header = styles.RowIndex.Render(label) + styles.Username.Render(rest)
	} else {
		header = styles.RowIndex.Render(header)
	}

	field := func(s string, style func(...string) string) string {
		t, _ := layout.TruncateText(s, width, text)
		return style(t)
	}

	lines := []string{
		header,
		field("  "+u.Email, styles.Email.Render),
		field("  id  "+u.ID, styles.Detail.Render),
		field("  img "+u.Avatar, styles.Detail.Render),
		field("  pw  "+u.Password, styles.Detail.Render),
	}
	return fitLines(lines, height)
}

func errorCard(index int, err error, width, height int, styles Styles, text layout.TextConfig) []string {
	line, _ := layout.TruncateText(rowLabel(index)+"error: "+err.Error(), width, text)
	return fitLines([]string{styles.Error.Render(line)}, height)
}

// fitLines trims or pads lines to exactly height entries.
func fitLines(lines []string, height int) []string {
	if len(lines) >= height {
		return lines[:height]
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}
