package report

import (
	"testing"

	"github.com/nikbrunner/vscroll/internal/window"
	"gotest.tools/v3/golden"
)

func TestWindow_Golden(t *testing.T) {
	tests := []struct {
		name string
		cfg  window.Config
		vp   window.ViewportState
		file string
	}{
		{
			name: "top of a long list",
			cfg:  window.Config{ItemHeight: 150, ItemCount: 5000, Tolerance: 2},
			vp:   window.ViewportState{ScrollTop: 0, Height: 500},
			file: "golden/window_top.golden",
		},
		{
			name: "scrolled into a long list",
			cfg:  window.Config{ItemHeight: 150, ItemCount: 5000, Tolerance: 2},
			vp:   window.ViewportState{ScrollTop: 1500, Height: 500},
			file: "golden/window_scrolled.golden",
		},
		{
			name: "scrolled past the end",
			cfg:  window.Config{ItemHeight: 50, ItemCount: 10, Tolerance: 5},
			vp:   window.ViewportState{ScrollTop: 100000, Height: 100},
			file: "golden/window_past_end.golden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			golden.Assert(t, Window(tt.cfg, tt.vp), tt.file)
		})
	}
}
