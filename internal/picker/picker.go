package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/search"
	"github.com/nikbrunner/vscroll/internal/window"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	emailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

const (
	resultHeight = 2 // username line + email line
	chromeHeight = 4 // header, blank, blank, footer
)

// Picker is a simple TUI for selecting from search results. Only the results
// that fit on screen are rendered.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	scrollTop int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.follow()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
				return p, nil
			case "k":
				p.move(-1)
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.cursor = next
	p.follow()
}

func (p Picker) listHeight() int {
	return max(p.height-chromeHeight, resultHeight)
}

// follow scrolls just enough to keep the cursor row on screen.
func (p *Picker) follow() {
	if len(p.results) == 0 {
		p.scrollTop = 0
		return
	}
	proj := window.Projector{ItemHeight: resultHeight, ItemCount: len(p.results)}
	top := proj.ProjectOffset(p.cursor)
	h := p.listHeight()

	if top < p.scrollTop {
		p.scrollTop = top
	}
	if top+resultHeight > p.scrollTop+h {
		p.scrollTop = top + resultHeight - h
	}
	p.scrollTop = proj.ClampScrollTop(p.scrollTop, h)
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for _, line := range p.visibleLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// visibleLines renders the results intersecting the list viewport.
func (p Picker) visibleLines() []string {
	if len(p.results) == 0 {
		return nil
	}
	h := p.listHeight()
	cfg := window.Config{ItemHeight: resultHeight, ItemCount: len(p.results), Tolerance: 0}
	r := window.Compute(window.ViewportState{ScrollTop: p.scrollTop, Height: h}, cfg)
	proj := window.NewProjector(cfg)

	lines := make([]string, 0, h)
	for i := r.Start; i <= r.End; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}
		rows := []string{
			cursor + style.Render(result.User.Username),
			"   " + emailStyle.Render(result.User.Email),
		}
		for k, row := range rows {
			y := proj.ProjectOffset(i) + k - p.scrollTop
			if y >= 0 && y < h {
				lines = append(lines, row)
			}
		}
	}
	return lines
}

// Selected returns the selected result, or nil if cancelled.
func (p Picker) Selected() *search.SearchResult {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return &p.results[p.cursor]
	}
	return nil
}

// SelectedUser returns the selected user, or nil if cancelled.
func (p Picker) SelectedUser() *model.User {
	if r := p.Selected(); r != nil {
		return r.User
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
