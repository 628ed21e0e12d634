// Package report formats window computations as plain text for the CLI.
package report

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/vscroll/internal/window"
)

// Window describes the range computed for vp and where each row is placed.
func Window(cfg window.Config, vp window.ViewportState) string {
	proj := window.NewProjector(cfg)
	r := window.Compute(vp, cfg)

	var b strings.Builder
	field := func(name string, format string, args ...any) {
		fmt.Fprintf(&b, "%-13s "+format+"\n", append([]any{name}, args...)...)
	}

	field("scrollTop", "%d", vp.ScrollTop)
	field("viewport", "%d", vp.Height)
	field("itemHeight", "%d", cfg.ItemHeight)
	field("itemCount", "%d", cfg.ItemCount)
	field("tolerance", "%d", cfg.Tolerance)
	field("extent", "%d", proj.TotalExtent())
	field("maxScrollTop", "%d", proj.MaxScrollTop(vp.Height))
	field("range", "%d-%d", r.Start, r.End)
	field("rows", "%d (at most %d)", r.Len(), cfg.MaxWindowLen(vp.Height))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%6s %9s %9s\n", "index", "top", "bottom")
	for i := r.Start; i <= r.End; i++ {
		top := proj.ProjectOffset(i)
		fmt.Fprintf(&b, "%6d %9d %9d\n", i, top, top+cfg.ItemHeight)
	}
	return b.String()
}
