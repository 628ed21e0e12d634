package window

import (
	"fmt"
	"math"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newTestList(t *testing.T, cfg Config) (*List[string], *[]int) {
	t.Helper()
	var calls []int
	l, err := New(cfg, func(i int) string {
		calls = append(calls, i)
		return fmt.Sprintf("row %d", i)
	})
	assert.NilError(t, err)
	return l, &calls
}

func TestNew_RejectsInvalid(t *testing.T) {
	render := func(i int) string { return "" }

	_, err := New(Config{ItemHeight: 0, ItemCount: 10}, render)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New[string](Config{ItemHeight: 10, ItemCount: 10}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "renderItem")
}

func TestList_RenderFrame(t *testing.T) {
	l, _ := newTestList(t, Config{ItemHeight: 150, ItemCount: 5000, Tolerance: 2})

	f := l.Render(ViewportState{ScrollTop: 1500, Height: 500}, 500)

	assert.Equal(t, f.ViewportHeight, 500)
	assert.Equal(t, f.Extent, 750000)
	assert.Equal(t, f.Range, Range{8, 15})
	assert.Assert(t, is.Len(f.Items, 8))
	for k, item := range f.Items {
		assert.Equal(t, item.Index, 8+k)
		assert.Equal(t, item.Top, item.Index*150)
		assert.Equal(t, item.Content, fmt.Sprintf("row %d", item.Index))
	}
}

func TestList_ReusesOverlappingRows(t *testing.T) {
	l, calls := newTestList(t, Config{ItemHeight: 10, ItemCount: 100, Tolerance: 1})

	l.Items(ViewportState{ScrollTop: 0, Height: 30}) // 0..4
	assert.DeepEqual(t, *calls, []int{0, 1, 2, 3, 4})

	*calls = nil
	l.Items(ViewportState{ScrollTop: 20, Height: 30}) // 1..6
	assert.DeepEqual(t, *calls, []int{5, 6})
	assert.Equal(t, l.Renders(), 7)
}

func TestList_CachesIdenticalRange(t *testing.T) {
	l, calls := newTestList(t, Config{ItemHeight: 10, ItemCount: 100, Tolerance: 0})

	first := l.Items(ViewportState{ScrollTop: 50, Height: 20})
	*calls = nil
	// A small delta inside the same row keeps the range.
	second := l.Items(ViewportState{ScrollTop: 55, Height: 20})

	assert.Equal(t, len(*calls), 0)
	assert.Equal(t, &first[0], &second[0])
}

func TestList_SetRendererInvalidates(t *testing.T) {
	l, _ := newTestList(t, Config{ItemHeight: 10, ItemCount: 100, Tolerance: 0})
	vp := ViewportState{ScrollTop: 0, Height: 20}
	l.Items(vp)

	assert.NilError(t, l.SetRenderer(func(i int) string { return fmt.Sprintf("new %d", i) }))
	items := l.Items(vp)
	assert.Equal(t, items[0].Content, "new 0")

	assert.ErrorIs(t, l.SetRenderer(nil), ErrInvalidConfiguration)
}

func TestList_DropsRowsOutsideWindow(t *testing.T) {
	l, calls := newTestList(t, Config{ItemHeight: 10, ItemCount: 100, Tolerance: 0})

	l.Items(ViewportState{ScrollTop: 0, Height: 10})   // 0..1
	l.Items(ViewportState{ScrollTop: 500, Height: 10}) // 50..51
	*calls = nil
	l.Items(ViewportState{ScrollTop: 0, Height: 10})

	assert.DeepEqual(t, *calls, []int{0, 1})
}

func TestList_RendererSeesOnlyValidIndices(t *testing.T) {
	cfg := Config{ItemHeight: 3, ItemCount: 17, Tolerance: 9}
	l, err := New(cfg, func(i int) int {
		if i < 0 || i >= cfg.ItemCount {
			t.Fatalf("renderer called with index %d", i)
		}
		return i
	})
	assert.NilError(t, err)

	for top := 0; top <= 200; top++ {
		l.Render(ViewportState{ScrollTop: top, Height: 10}, 10)
	}
}

func TestList_HugeScrollTopRendersLastRow(t *testing.T) {
	l, calls := newTestList(t, Config{ItemHeight: 50, ItemCount: 10, Tolerance: 5})

	f := l.Render(ViewportState{ScrollTop: math.MaxInt - 5, Height: 100}, 100)

	assert.Equal(t, f.Range, Range{9, 9})
	assert.DeepEqual(t, *calls, []int{9})
}
