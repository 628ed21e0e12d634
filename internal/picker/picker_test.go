package picker

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/search"
)

func twoResults() []search.SearchResult {
	return []search.SearchResult{
		{Index: 10, User: &model.User{ID: "u1", Username: "ada", Email: "ada@example.com"}},
		{Index: 42, User: &model.User{ID: "u2", Username: "alan", Email: "alan@example.com"}},
	}
}

func manyResults(n int) []search.SearchResult {
	results := make([]search.SearchResult, n)
	for i := range results {
		results[i] = search.SearchResult{
			Index: i,
			User:  &model.User{ID: fmt.Sprintf("u%d", i), Username: fmt.Sprintf("user-%03d", i), Email: "x@example.com"},
		}
	}
	return results
}

func press(p Picker, msg tea.Msg) Picker {
	newModel, _ := p.Update(msg)
	return newModel.(Picker)
}

func TestPicker_InitialState(t *testing.T) {
	p := New(twoResults(), "a")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDownAndUp(t *testing.T) {
	p := New(twoResults(), "a")

	p = press(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}

	p = press(p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(twoResults()[:1], "a")

	p = press(p, tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	p = press(p, tea.KeyMsg{Type: tea.KeyDown})
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(twoResults(), "a")
	p.cursor = 1

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.Selected(); got == nil || got.Index != 42 {
		t.Errorf("expected selected row index 42, got %+v", got)
	}
	if got := p.SelectedUser(); got == nil || got.ID != "u2" {
		t.Errorf("expected user u2, got %+v", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(twoResults(), "a")

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = newModel.(Picker)

	if !p.Cancelled() {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.SelectedUser() != nil {
		t.Error("expected nil when cancelled")
	}
}

func TestPicker_RendersOnlyVisibleResults(t *testing.T) {
	p := New(manyResults(500), "user")
	p = press(p, tea.WindowSizeMsg{Width: 80, Height: 14}) // list height 10 = 5 results

	view := p.View()
	if !strings.Contains(view, "user-000") || !strings.Contains(view, "user-004") {
		t.Errorf("expected first five results in view:\n%s", view)
	}
	if strings.Contains(view, "user-005") {
		t.Errorf("result past the viewport was rendered:\n%s", view)
	}
}

func TestPicker_ScrollFollowsCursor(t *testing.T) {
	p := New(manyResults(500), "user")
	p = press(p, tea.WindowSizeMsg{Width: 80, Height: 14})

	for range 7 {
		p = press(p, tea.KeyMsg{Type: tea.KeyDown})
	}

	// cursor 7 at offset 14; its second line must end the 10-line list.
	if p.scrollTop != 6 {
		t.Errorf("expected scrollTop 6, got %d", p.scrollTop)
	}
	view := p.View()
	if !strings.Contains(view, "user-007") || strings.Contains(view, "user-002") {
		t.Errorf("unexpected window after scrolling:\n%s", view)
	}
	if got := len(p.visibleLines()); got != 10 {
		t.Errorf("expected 10 visible lines, got %d", got)
	}
}

func TestPicker_EmptyResults(t *testing.T) {
	p := New(nil, "nothing")
	p = press(p, tea.KeyMsg{Type: tea.KeyDown})

	if !strings.Contains(p.View(), "(0 results)") {
		t.Error("expected result count in header")
	}
	if p.SelectedUser() != nil {
		t.Error("expected no selection")
	}
}
