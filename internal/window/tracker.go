package window

import "github.com/nikbrunner/vscroll/internal/log"

// Viewport is the host's scrolling element. The tracker only reads from it and
// never outlives its subscription.
type Viewport interface {
	// ScrollTop returns the current scroll offset.
	ScrollTop() int
	// ClientHeight returns the visible height, or 0 before the first layout pass.
	ClientHeight() int
	// Subscribe registers fn to run on every scroll or resize signal and
	// returns the func that removes it.
	Subscribe(fn func()) (unsubscribe func())
}

// TrackerState is the binding state of a Tracker.
type TrackerState int

const (
	Unbound TrackerState = iota
	Bound
)

func (s TrackerState) String() string {
	if s == Bound {
		return "bound"
	}
	return "unbound"
}

// Tracker follows a viewport's scroll position and notifies observers when it
// changes. It must be driven from a single goroutine: the one that delivers
// the viewport's signals.
type Tracker struct {
	viewport    Viewport
	unsubscribe func()
	state       ViewportState
	published   bool

	observers []*observer
}

type observer struct {
	fn func(ViewportState)
}

// NewTracker returns an unbound tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns whether the tracker is attached to a viewport.
func (t *Tracker) State() TrackerState {
	if t.viewport != nil {
		return Bound
	}
	return Unbound
}

// Viewport returns the last observed viewport state.
func (t *Tracker) Viewport() ViewportState {
	return t.state
}

// OnChange registers fn to receive every published state. The returned func
// removes the registration; an observer removed while a state is being
// published is not called for it.
func (t *Tracker) OnChange(fn func(ViewportState)) (remove func()) {
	o := &observer{fn: fn}
	t.observers = append(t.observers, o)
	return func() {
		o.fn = nil
		for i, existing := range t.observers {
			if existing == o {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

// Bind attaches the tracker to v and reads its position immediately so the
// first render does not start from a zero offset. Binding while already bound
// releases the previous viewport first.
func (t *Tracker) Bind(v Viewport) {
	if t.viewport != nil {
		t.Unbind()
	}
	t.viewport = v
	t.published = false
	t.unsubscribe = v.Subscribe(t.Signal)
	log.With("component", "tracker").Debug("bound")
	t.Signal()
}

// Unbind releases the viewport subscription. Later signals are ignored.
func (t *Tracker) Unbind() {
	if t.viewport == nil {
		return
	}
	if t.unsubscribe != nil {
		t.unsubscribe()
	}
	t.unsubscribe = nil
	t.viewport = nil
	log.With("component", "tracker").Debug("unbound")
}

// Signal re-reads the viewport and publishes the state if it changed.
// It is a no-op while unbound.
func (t *Tracker) Signal() {
	if t.viewport == nil {
		return
	}
	next := ViewportState{
		ScrollTop: max(t.viewport.ScrollTop(), 0),
		Height:    max(t.viewport.ClientHeight(), 0),
	}
	if t.published && next == t.state {
		return
	}
	t.state = next
	t.published = true

	// Copy so observers may unregister themselves while being notified.
	observers := append([]*observer(nil), t.observers...)
	for _, o := range observers {
		if o.fn != nil {
			o.fn(next)
		}
	}
}
