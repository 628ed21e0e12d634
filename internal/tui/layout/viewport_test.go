package layout

import "testing"

func TestCalculateViewportHeight(t *testing.T) {
	cfg := DefaultConfig().View

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 40, 38},   // 40 - 2
		{"small terminal", 3, 1},      // 3 - 2
		{"chrome only", 2, 1},         // clamps to MinViewportHeight
		{"unmeasured terminal", 0, 0}, // before the first WindowSizeMsg
		{"negative height", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateViewportHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateContentWidth(t *testing.T) {
	cfg := DefaultConfig().View

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"normal terminal", 80, 78}, // 80 - scrollbar (1) - padding (1)
		{"narrow terminal", 2, 0},
		{"unmeasured terminal", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateContentWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateContentWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateScrollbar(t *testing.T) {
	tests := []struct {
		name           string
		scrollTop      int
		viewportHeight int
		extent         int
		want           Scrollbar
	}{
		{"at top", 0, 10, 100, Scrollbar{Top: 0, Size: 1}},
		{"at bottom", 90, 10, 100, Scrollbar{Top: 9, Size: 1}},
		{"halfway", 45, 10, 100, Scrollbar{Top: 4, Size: 1}},
		{"half visible", 10, 10, 20, Scrollbar{Top: 5, Size: 5}},
		{"everything visible", 0, 10, 8, Scrollbar{Top: 0, Size: 10}},
		{"past the end clamps", 500, 10, 100, Scrollbar{Top: 9, Size: 1}},
		{"unmeasured viewport", 0, 0, 100, Scrollbar{}},
		{"huge list keeps a thumb", 0, 20, 25000, Scrollbar{Top: 0, Size: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScrollbar(tt.scrollTop, tt.viewportHeight, tt.extent)
			if got != tt.want {
				t.Errorf("CalculateScrollbar(%d, %d, %d) = %+v, want %+v",
					tt.scrollTop, tt.viewportHeight, tt.extent, got, tt.want)
			}
		})
	}
}
