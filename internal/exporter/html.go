package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/window"
)

// Options describe the window written by ExportHTML. The defaults match a
// 500px viewport of 150px cards.
type Options struct {
	ItemHeight     int
	Tolerance      int
	ViewportHeight int
	ScrollTop      int
}

// DefaultOptions returns the snapshot defaults.
func DefaultOptions() Options {
	return Options{
		ItemHeight:     150,
		Tolerance:      2,
		ViewportHeight: 500,
	}
}

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/vscroll-snapshot-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("vscroll-snapshot-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// Snapshot renders one window of source into a frame ready for ExportHTML.
func Snapshot(count int, at func(int) model.User, opts Options) (window.Frame[model.User], error) {
	cfg, err := window.NewConfig(count, window.WithItemHeight(opts.ItemHeight), window.WithTolerance(opts.Tolerance))
	if err != nil {
		return window.Frame[model.User]{}, err
	}
	list, err := window.New(cfg, at)
	if err != nil {
		return window.Frame[model.User]{}, err
	}
	scrollTop := list.Projector().ClampScrollTop(opts.ScrollTop, opts.ViewportHeight)
	vp := window.ViewportState{ScrollTop: scrollTop, Height: opts.ViewportHeight}
	return list.Render(vp, opts.ViewportHeight), nil
}

// ExportHTML writes frame as a standalone page: a scrolling container of the
// viewport height, a spacer of the full extent, and one absolutely positioned
// card per materialized row.
func ExportHTML(frame window.Frame[model.User], itemHeight int) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n<meta charset=\"utf-8\">\n<title>vscroll snapshot</title>\n</head>\n<body>\n")

	fmt.Fprintf(&b,
		"<div class=\"viewport\" data-scroll-top=\"%d\" style=\"height: %dpx; overflow-y: auto\">\n",
		frame.ScrollTop, frame.ViewportHeight)
	fmt.Fprintf(&b,
		"    <div class=\"spacer\" style=\"height: %dpx; position: relative\">\n",
		frame.Extent)

	for _, item := range frame.Items {
		writeRow(&b, item, itemHeight)
	}

	b.WriteString("    </div>\n</div>\n</body>\n</html>\n")
	return b.String()
}

func writeRow(b *strings.Builder, item window.PositionedItem[model.User], itemHeight int) {
	const prefix = "        "
	u := item.Content

	fmt.Fprintf(b,
		"%s<div class=\"row\" data-index=\"%d\" style=\"position: absolute; top: %dpx; left: 0; right: 0; height: %dpx\">\n",
		prefix, item.Index, item.Top, itemHeight)
	fmt.Fprintf(b, "%s    <div class=\"user-id\">%s</div>\n", prefix, html.EscapeString(u.ID))
	fmt.Fprintf(b, "%s    <div class=\"username\">%s</div>\n", prefix, html.EscapeString(u.Username))
	fmt.Fprintf(b, "%s    <div class=\"email\">%s</div>\n", prefix, html.EscapeString(u.Email))
	fmt.Fprintf(b, "%s    <img class=\"avatar\" src=\"%s\" alt=\"Avatar\">\n", prefix, html.EscapeString(u.Avatar))
	fmt.Fprintf(b, "%s    <div class=\"password\">%s</div>\n", prefix, html.EscapeString(u.Password))
	fmt.Fprintf(b, "%s</div>\n", prefix)
}
