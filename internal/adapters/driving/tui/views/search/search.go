// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/components/modepicker"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

// View represents the search view with input, mode picker, results list,
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	picker    *modepicker.Picker
	list      *list.ResultList
	statusbar *status.Bar

	commands driving.CommandBus
	ctx      context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, commands driving.CommandBus) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		picker:     modepicker.NewPicker(s),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		commands:   commands,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		ready:      false,
		focusInput: true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Tab toggles the search mode in either focus state
	if msg.Type == tea.KeyTab {
		mode := v.picker.Toggle()
		v.statusbar.SetMode(mode)
		return v, func() tea.Msg {
			return messages.ModeToggled{Mode: mode}
		}
	}

	// Enter in input mode submits search
	if msg.Type == tea.KeyEnter && v.focusInput {
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false // Move to results mode after search
		v.input.Blur()
		cmd := v.performSearch(query, v.picker.Mode())
		return v, cmd
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		// New search: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, nil
	}

	return v, nil
}

// performSearch dispatches the search command and returns the outcome
// as a message.
func (v *View) performSearch(query string, mode domain.SearchMode) tea.Cmd {
	return func() tea.Msg {
		if v.commands == nil {
			return messages.ErrorOccurred{Err: ErrNoCommandBus}
		}

		res := result.FromAny[*domain.SearchResponse](v.commands.Execute(
			v.ctx,
			driving.OpWebSearch,
			domain.NewWebSearchCommand(query, mode),
		))
		if res.IsFailure() {
			return messages.SearchCompleted{Response: nil, Err: errors.New(res.Error())}
		}
		return messages.SearchCompleted{Response: res.Value(), Err: nil}
	}
}

// handleSearchCompleted processes the search outcome.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	var results []domain.SearchResult
	if msg.Response != nil {
		results = msg.Response.Results
	}
	v.list.SetResults(results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(results))

	// Switch to results mode after successful search
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("Lookfar")
	sections = append(sections, header, "")

	// Search input and mode picker
	sections = append(sections, v.input.View(), v.picker.View(), "")

	// Error display, verbatim from the failed dispatch
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Results list
	sections = append(sections, v.list.View())

	// Status bar at bottom
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-11) // Reserve space for header, input, picker, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Mode returns the currently selected search mode.
func (v *View) Mode() domain.SearchMode {
	return v.picker.Mode()
}

// SetMode sets the search mode.
func (v *View) SetMode(mode domain.SearchMode) {
	v.picker.SetMode(mode)
	v.statusbar.SetMode(v.picker.Mode())
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Replay prefills the view from a history entry and dispatches the
// search immediately.
func (v *View) Replay(entry domain.HistoryEntry) tea.Cmd {
	v.Reset()
	v.input.SetValue(entry.Query)
	v.SetMode(entry.Mode)
	v.statusbar.SetState(status.StateSearching)
	v.focusInput = false
	v.input.Blur()
	return v.performSearch(entry.Query, v.picker.Mode())
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
