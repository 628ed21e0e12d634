package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/vscroll/internal/log"
	"github.com/nikbrunner/vscroll/internal/storage"
	"github.com/nikbrunner/vscroll/internal/tui/layout"
	"github.com/nikbrunner/vscroll/internal/window"
)

// screen is the part of the App shared by every copy bubbletea makes of it.
// The tracker keeps a reference to the viewport it is bound to, so both must
// outlive a single Update.
type screen struct {
	viewport *hostViewport
	tracker  *window.Tracker
	list     *window.List[[]string]
	frame    window.Frame[[]string]

	removeObserver func()
}

// refresh materializes the frame for the tracker's current state.
func (s *screen) refresh() {
	s.frame = s.list.Render(s.tracker.Viewport(), s.viewport.ClientHeight())
}

// App is the main bubbletea model for the virtual list.
type App struct {
	screen *screen
	source storage.Source
	keys   KeyMap
	styles Styles
	layout layout.LayoutConfig
	copy   func(string) error

	mode      Mode
	jump      JumpState
	showHints bool
	message   string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Source       storage.Source
	Config       window.Config
	InitialIndex int                  // row scrolled to the top on start
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
}

// NewApp creates a new App and binds its tracker to the terminal viewport.
// The viewport has no height until the first tea.WindowSizeMsg arrives.
func NewApp(params AppParams) (App, error) {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	if params.Source == nil {
		return App{}, fmt.Errorf("%w: source is required", window.ErrInvalidConfiguration)
	}

	list, err := window.New(params.Config, rowRenderer(params.Source, 0, params.Config.ItemHeight, styles, layoutCfg.Text))
	if err != nil {
		return App{}, err
	}

	s := &screen{
		viewport: newHostViewport(list.Projector()),
		tracker:  window.NewTracker(),
		list:     list,
	}
	s.removeObserver = s.tracker.OnChange(func(window.ViewportState) {
		s.refresh()
	})
	if params.InitialIndex > 0 {
		s.viewport.ScrollTo(list.Projector().ProjectOffset(params.InitialIndex))
	}
	s.tracker.Bind(s.viewport)

	return App{
		screen:    s,
		source:    params.Source,
		keys:      keys,
		styles:    styles,
		layout:    layoutCfg,
		copy:      copyFn,
		mode:      ModeNormal,
		jump:      NewJumpState(layoutCfg),
		showHints: true,
	}, nil
}

// Close unbinds the tracker. Signals arriving afterwards are ignored.
func (a App) Close() {
	a.screen.tracker.Unbind()
	if a.screen.removeObserver != nil {
		a.screen.removeObserver()
		a.screen.removeObserver = nil
	}
}

// Mode returns what the keyboard currently drives.
func (a App) Mode() Mode {
	return a.mode
}

// ScrollTop returns the current scroll offset in rows.
func (a App) ScrollTop() int {
	return a.screen.viewport.ScrollTop()
}

// Frame returns the last materialized frame.
func (a App) Frame() window.Frame[[]string] {
	return a.screen.frame
}

// Tracker returns the tracker bound to the terminal viewport.
func (a App) Tracker() *window.Tracker {
	return a.screen.tracker
}

// TopIndex returns the row at the top edge of the viewport.
func (a App) TopIndex() int {
	return a.screen.list.Projector().IndexForOffset(a.ScrollTop())
}

// Message returns the feedback shown after the last action.
func (a App) Message() string {
	return a.message
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.MouseMsg:
		if a.mode != ModeNormal || msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.screen.viewport.ScrollBy(-a.layout.View.WheelStep)
		case tea.MouseButtonWheelDown:
			a.screen.viewport.ScrollBy(a.layout.View.WheelStep)
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeJump {
			return a.updateJump(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := a.screen.viewport

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			vp.ScrollTo(0)
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false
	a.message = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.Close()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		vp.ScrollBy(1)

	case key.Matches(msg, a.keys.Up):
		vp.ScrollBy(-1)

	case key.Matches(msg, a.keys.HalfPageDown):
		vp.ScrollBy(max(vp.ClientHeight()/2, 1))

	case key.Matches(msg, a.keys.HalfPageUp):
		vp.ScrollBy(-max(vp.ClientHeight()/2, 1))

	case key.Matches(msg, a.keys.PageDown):
		vp.ScrollBy(max(vp.ClientHeight(), 1))

	case key.Matches(msg, a.keys.PageUp):
		vp.ScrollBy(-max(vp.ClientHeight(), 1))

	case key.Matches(msg, a.keys.Bottom):
		vp.ScrollTo(vp.MaxScrollTop())

	case key.Matches(msg, a.keys.Jump):
		a.mode = ModeJump
		a.jump.Reset()
		a.jump.Input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Yank):
		a.yankTopRow()

	case key.Matches(msg, a.keys.Help):
		a.showHints = !a.showHints
	}

	return a, nil
}

func (a App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
		a.jump.Reset()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		value := strings.TrimSpace(a.jump.Input.Value())
		a.mode = ModeNormal
		a.jump.Reset()

		index, err := strconv.Atoi(value)
		count := a.screen.list.Config().ItemCount
		if err != nil || index < 0 || index >= count {
			a.message = fmt.Sprintf("no row %q (0-%d)", value, count-1)
			return a, nil
		}
		a.ScrollToIndex(index)
		return a, nil
	}

	var cmd tea.Cmd
	a.jump.Input, cmd = a.jump.Input.Update(msg)
	return a, cmd
}

// ScrollToIndex brings the row at index to the top edge, or as close as the
// end of the list allows.
func (a App) ScrollToIndex(index int) {
	a.screen.viewport.ScrollTo(a.screen.list.Projector().ProjectOffset(index))
}

func (a *App) resize(width, height int) {
	widthChanged := width != a.width
	a.width = width
	a.height = height

	if widthChanged {
		contentWidth := layout.CalculateContentWidth(width, a.layout.View)
		render := rowRenderer(a.source, contentWidth, a.screen.list.Config().ItemHeight, a.styles, a.layout.Text)
		if err := a.screen.list.SetRenderer(render); err != nil {
			log.Error("swap renderer", "error", err)
		}
	}

	viewportHeight := layout.CalculateViewportHeight(height, a.layout.View)
	a.screen.viewport.Resize(viewportHeight)

	// A width change alone does not move the viewport, so the tracker has
	// nothing to publish; materialize with the new renderer directly.
	if widthChanged {
		a.screen.refresh()
	}
	log.Debug("terminal resized", "width", width, "height", height, "viewport", viewportHeight)
}

func (a *App) yankTopRow() {
	index := a.TopIndex()
	user, err := a.source.At(index)
	if err != nil {
		a.message = "copy failed: " + err.Error()
		return
	}
	if err := a.copy(fmt.Sprintf("%s <%s>", user.Username, user.Email)); err != nil {
		log.Warn("clipboard write failed", "error", err)
		a.message = "copy failed: " + err.Error()
		return
	}
	a.message = "copied " + user.Username
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
