// Package recent provides the session history view for the TUI.
package recent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

// historyPageSize is how many entries the view requests at once.
const historyPageSize = 20

// View lists this session's searches and lets the user replay one.
type View struct {
	styles  *styles.Styles
	queries driving.QueryBus
	ctx     context.Context

	entries  []domain.HistoryEntry
	selected int
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new recent searches view.
func NewView(s *styles.Styles, queries driving.QueryBus) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		queries: queries,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history through the query bus.
func (v *View) Init() tea.Cmd {
	return v.loadHistory()
}

// loadHistory dispatches the recent searches query.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.queries == nil {
			return messages.HistoryLoaded{Err: errors.New("recent: query bus not configured")}
		}

		res := result.FromAny[[]domain.HistoryEntry](v.queries.Execute(
			v.ctx,
			driving.OpRecentSearches,
			domain.NewRecentSearchesQuery(historyPageSize),
		))
		if res.IsFailure() {
			return messages.HistoryLoaded{Err: errors.New(res.Error())}
		}
		return messages.HistoryLoaded{Entries: res.Value()}
	}
}

// Update handles messages for the recent view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.err = msg.Err
		v.entries = msg.Entries
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		if entry, ok := v.SelectedEntry(); ok {
			return v, func() tea.Msg {
				return messages.SearchReplay{Entry: entry}
			}
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
	case "r":
		return v, v.loadHistory()
	}

	return v, nil
}

// View renders the recent searches list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Recent Searches"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No searches this session."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	for i, entry := range v.entries {
		cursor := "  "
		line := fmt.Sprintf("%s (%s, %d results, %s)",
			entry.Query, entry.Mode, entry.ResultCount,
			entry.SearchedAt.Format("15:04:05"))

		if i == v.selected {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(line))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] search again  [r] refresh  [esc] back"))

	return lipgloss.NewStyle().Width(v.width).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded history entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedEntry returns the currently selected entry.
func (v *View) SelectedEntry() (domain.HistoryEntry, bool) {
	if len(v.entries) == 0 || v.selected < 0 || v.selected >= len(v.entries) {
		return domain.HistoryEntry{}, false
	}
	return v.entries[v.selected], true
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
