// Package modepicker provides the search mode selector for the TUI.
package modepicker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
)

// Picker toggles between the available search modes.
type Picker struct {
	mode   domain.SearchMode
	styles *styles.Styles
}

// NewPicker creates a mode picker starting in quick search mode.
func NewPicker(s *styles.Styles) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Picker{
		mode:   domain.ModeSearch,
		styles: s,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles picker messages. The picker is passive, switched via
// Toggle and SetMode.
func (p *Picker) Update(_ tea.Msg) (*Picker, tea.Cmd) {
	return p, nil
}

// View renders the picker as a pair of labels with the active mode
// highlighted.
func (p *Picker) View() string {
	label := p.styles.Muted.Render("Mode: ")

	search := p.renderOption(domain.ModeSearch)
	research := p.renderOption(domain.ModeResearch)

	hint := p.styles.Help.Render("  (tab to switch)")

	return lipgloss.JoinHorizontal(lipgloss.Center, label, search, " ", research, hint)
}

func (p *Picker) renderOption(mode domain.SearchMode) string {
	text := " " + mode.String() + " "
	if mode == p.mode {
		return p.styles.Selected.Render(text)
	}
	return p.styles.Muted.Render(text)
}

// Toggle switches to the other mode and returns the new one.
func (p *Picker) Toggle() domain.SearchMode {
	p.mode = p.mode.Toggle()
	return p.mode
}

// Mode returns the currently selected mode.
func (p *Picker) Mode() domain.SearchMode {
	return p.mode
}

// SetMode sets the selected mode. Invalid modes are ignored.
func (p *Picker) SetMode(mode domain.SearchMode) {
	if mode.IsValid() {
		p.mode = mode
	}
}

// Description returns the human-readable description of the active mode.
func (p *Picker) Description() string {
	return p.mode.Description()
}
