package window

import "math"

// ViewportState is the observed scroll position and size of a viewport.
// Height is 0 until the viewport has been measured.
type ViewportState struct {
	ScrollTop int
	Height    int
}

// Range is an inclusive span of row indices to materialize.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether index falls inside the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index <= r.End
}

// Compute maps a viewport onto the overscanned range of rows that intersect it.
// cfg must have passed Validate. The result always satisfies
// 0 <= Start <= End <= ItemCount-1, including when the viewport is scrolled
// past the end of the list.
func Compute(vp ViewportState, cfg Config) Range {
	scrollTop := max(vp.ScrollTop, 0)
	height := max(vp.Height, 0)

	// Integer division is floor for non-negative operands. The bottom edge
	// saturates so a scroll offset near math.MaxInt still lands on the last row.
	bottom := scrollTop + height
	if bottom < scrollTop {
		bottom = math.MaxInt
	}
	rawStart := scrollTop/cfg.ItemHeight - cfg.Tolerance
	rawEnd := bottom/cfg.ItemHeight + cfg.Tolerance
	if rawEnd < 0 {
		rawEnd = math.MaxInt
	}

	end := min(cfg.ItemCount-1, rawEnd)
	start := min(max(0, rawStart), end)

	return Range{Start: start, End: end}
}

// MaxWindowLen is the most rows Compute can return for a viewport of the given
// height, whatever the item count.
func (c Config) MaxWindowLen(viewportHeight int) int {
	height := max(viewportHeight, 0)
	rows := height / c.ItemHeight
	if height%c.ItemHeight != 0 {
		rows++
	}
	return rows + 2*c.Tolerance + 1
}
