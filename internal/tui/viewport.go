package tui

import "github.com/nikbrunner/vscroll/internal/window"

// hostViewport is the terminal region the list scrolls in. It plays the part
// of the scrolling element the tracker binds to: it owns the scroll offset and
// the measured height, and signals subscribers whenever either changes.
type hostViewport struct {
	proj      window.Projector
	scrollTop int
	height    int

	subscribers map[int]func()
	nextID      int
}

func newHostViewport(proj window.Projector) *hostViewport {
	return &hostViewport{
		proj:        proj,
		subscribers: make(map[int]func()),
	}
}

// ScrollTop implements window.Viewport.
func (v *hostViewport) ScrollTop() int {
	return v.scrollTop
}

// ClientHeight implements window.Viewport.
func (v *hostViewport) ClientHeight() int {
	return v.height
}

// Subscribe implements window.Viewport.
func (v *hostViewport) Subscribe(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn
	return func() {
		delete(v.subscribers, id)
	}
}

// ScrollTo moves to top, clamped to the scrollable range.
func (v *hostViewport) ScrollTo(top int) {
	top = v.proj.ClampScrollTop(top, v.height)
	if top == v.scrollTop {
		return
	}
	v.scrollTop = top
	v.signal()
}

// ScrollBy moves by delta rows.
func (v *hostViewport) ScrollBy(delta int) {
	v.ScrollTo(v.scrollTop + delta)
}

// Resize records a new measured height and re-clamps the offset so the last
// row stays at the bottom edge.
func (v *hostViewport) Resize(height int) {
	height = max(height, 0)
	top := v.proj.ClampScrollTop(v.scrollTop, height)
	if height == v.height && top == v.scrollTop {
		return
	}
	v.height = height
	v.scrollTop = top
	v.signal()
}

// MaxScrollTop returns the largest reachable offset at the current height.
func (v *hostViewport) MaxScrollTop() int {
	return v.proj.MaxScrollTop(v.height)
}

func (v *hostViewport) signal() {
	for _, fn := range v.subscribers {
		fn()
	}
}
