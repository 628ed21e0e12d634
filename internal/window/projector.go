package window

// Projector places rows of a fixed-height list in absolute coordinates.
type Projector struct {
	ItemHeight int
	ItemCount  int
}

// NewProjector returns the projector for cfg.
func NewProjector(cfg Config) Projector {
	return Projector{ItemHeight: cfg.ItemHeight, ItemCount: cfg.ItemCount}
}

// ProjectOffset returns the top offset of the row at index.
func (p Projector) ProjectOffset(index int) int {
	return index * p.ItemHeight
}

// TotalExtent returns the scrollable height of the whole list.
func (p Projector) TotalExtent() int {
	return p.ItemCount * p.ItemHeight
}

// IndexForOffset returns the row covering offset, clamped to the list.
func (p Projector) IndexForOffset(offset int) int {
	if offset <= 0 || p.ItemHeight <= 0 {
		return 0
	}
	return min(offset/p.ItemHeight, max(p.ItemCount-1, 0))
}

// MaxScrollTop returns the largest scroll offset that still fills a viewport
// of the given height.
func (p Projector) MaxScrollTop(viewportHeight int) int {
	return max(p.TotalExtent()-viewportHeight, 0)
}

// ClampScrollTop limits scrollTop to [0, MaxScrollTop(viewportHeight)].
func (p Projector) ClampScrollTop(scrollTop, viewportHeight int) int {
	return min(max(scrollTop, 0), p.MaxScrollTop(viewportHeight))
}
