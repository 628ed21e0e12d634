package window

import (
	"fmt"

	"github.com/nikbrunner/vscroll/internal/log"
)

// RenderFunc produces the content for the row at index. It is called
// synchronously with 0 <= index < ItemCount, may be called again for the same
// index, and must not have side effects.
type RenderFunc[T any] func(index int) T

// PositionedItem is one materialized row placed at its absolute offset.
type PositionedItem[T any] struct {
	Index   int
	Top     int
	Content T
}

// Frame is everything a host needs to draw one pass: a container of
// ViewportHeight holding a spacer of Extent, with Items positioned inside it.
type Frame[T any] struct {
	ViewportHeight int
	Extent         int
	ScrollTop      int
	Range          Range
	Items          []PositionedItem[T]
}

// List is a virtualized list of fixed-height rows.
type List[T any] struct {
	cfg    Config
	proj   Projector
	render RenderFunc[T]

	// generation changes whenever the renderer does; cached rows from an older
	// generation are never reused.
	generation int

	cacheValid bool
	cacheRange Range
	cacheGen   int
	cacheItems []PositionedItem[T]
	byIndex    map[int]T

	renders int
}

// New validates cfg and returns a list that materializes rows with render.
func New[T any](cfg Config, render RenderFunc[T]) (*List[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if render == nil {
		return nil, fmt.Errorf("%w: renderItem must be a function", ErrInvalidConfiguration)
	}
	return &List[T]{
		cfg:     cfg,
		proj:    NewProjector(cfg),
		render:  render,
		byIndex: make(map[int]T),
	}, nil
}

// Config returns the list configuration.
func (l *List[T]) Config() Config {
	return l.cfg
}

// Projector returns the layout projector for the list.
func (l *List[T]) Projector() Projector {
	return l.proj
}

// Renders returns how many times the renderer has been invoked.
func (l *List[T]) Renders() int {
	return l.renders
}

// SetRenderer swaps the renderer and drops every materialized row.
func (l *List[T]) SetRenderer(render RenderFunc[T]) error {
	if render == nil {
		return fmt.Errorf("%w: renderItem must be a function", ErrInvalidConfiguration)
	}
	l.render = render
	l.Invalidate()
	return nil
}

// Invalidate forces every row to be rendered again on the next pass.
func (l *List[T]) Invalidate() {
	l.generation++
	l.cacheValid = false
	l.byIndex = make(map[int]T)
}

// Range returns the window for vp.
func (l *List[T]) Range(vp ViewportState) Range {
	return Compute(vp, l.cfg)
}

// Items returns the positioned rows for vp. The result is cached by
// (range, renderer generation); rows shared with the previous window are
// reused without calling the renderer. Callers must not modify the slice.
func (l *List[T]) Items(vp ViewportState) []PositionedItem[T] {
	r := l.Range(vp)
	if l.cacheValid && l.cacheRange == r && l.cacheGen == l.generation {
		return l.cacheItems
	}

	items := make([]PositionedItem[T], 0, r.Len())
	next := make(map[int]T, r.Len())
	reused := 0
	for i := r.Start; i <= r.End; i++ {
		content, ok := l.byIndex[i]
		if ok {
			reused++
		} else {
			content = l.render(i)
			l.renders++
		}
		next[i] = content
		items = append(items, PositionedItem[T]{
			Index:   i,
			Top:     l.proj.ProjectOffset(i),
			Content: content,
		})
	}

	log.With("component", "list").Debug("window materialized", "start", r.Start, "end", r.End, "reused", reused, "rendered", len(items)-reused)

	l.byIndex = next
	l.cacheRange = r
	l.cacheGen = l.generation
	l.cacheItems = items
	l.cacheValid = true
	return items
}

// Render produces the frame for vp inside a container of viewportHeight.
// viewportHeight is the height the caller gives the container; vp.Height is
// what the tracker measured and may still be 0.
func (l *List[T]) Render(vp ViewportState, viewportHeight int) Frame[T] {
	items := l.Items(vp)
	return Frame[T]{
		ViewportHeight: viewportHeight,
		Extent:         l.proj.TotalExtent(),
		ScrollTop:      max(vp.ScrollTop, 0),
		Range:          l.Range(vp),
		Items:          items,
	}
}
