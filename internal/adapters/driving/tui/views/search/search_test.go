package search

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

// recordingBus implements driving.CommandBus and captures dispatches.
type recordingBus struct {
	lastName    string
	lastPayload any
	res         result.Result[any]
}

func (b *recordingBus) Execute(_ context.Context, name string, payload any) result.Result[any] {
	b.lastName = name
	b.lastPayload = payload
	return b.res
}

var _ driving.CommandBus = (*recordingBus)(nil)

func okBus(resp *domain.SearchResponse) *recordingBus {
	return &recordingBus{res: result.ToAny(result.Ok(resp))}
}

func TestNewViewStartsFocused(t *testing.T) {
	v := NewView(nil, nil, okBus(nil))

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.Equal(t, domain.ModeSearch, v.Mode())
}

func TestEnterDispatchesSearchCommand(t *testing.T) {
	bus := okBus(&domain.SearchResponse{RequestID: "r1"})
	v := NewView(nil, nil, bus)
	v.SetDimensions(100, 40)
	v.SetQuery("go generics")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Equal(t, "r1", completed.Response.RequestID)

	assert.Equal(t, driving.OpWebSearch, bus.lastName)
	sent, ok := bus.lastPayload.(domain.WebSearchCommand)
	require.True(t, ok)
	assert.Equal(t, "go generics", sent.Text)
	assert.Equal(t, domain.ModeSearch, sent.Mode)
	assert.False(t, v.InputFocused(), "submitting moves focus to results")
}

func TestEnterIgnoresEmptyQuery(t *testing.T) {
	bus := okBus(nil)
	v := NewView(nil, nil, bus)
	v.SetDimensions(100, 40)
	v.SetQuery("   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, bus.lastName)
}

func TestTabTogglesMode(t *testing.T) {
	v := NewView(nil, nil, okBus(nil))
	v.SetDimensions(100, 40)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)

	toggled, ok := cmd().(messages.ModeToggled)
	require.True(t, ok)
	assert.Equal(t, domain.ModeResearch, toggled.Mode)
	assert.Equal(t, domain.ModeResearch, v.Mode())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ModeSearch, v.Mode())
}

func TestModeCarriedIntoCommand(t *testing.T) {
	bus := okBus(&domain.SearchResponse{})
	v := NewView(nil, nil, bus)
	v.SetDimensions(100, 40)
	v.SetMode(domain.ModeResearch)
	v.SetQuery("deep dive")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	sent, ok := bus.lastPayload.(domain.WebSearchCommand)
	require.True(t, ok)
	assert.Equal(t, domain.ModeResearch, sent.Mode)
}

func TestEscReturnsToMenu(t *testing.T) {
	v := NewView(nil, nil, okBus(nil))
	v.SetDimensions(100, 40)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestSearchCompletedPopulatesResults(t *testing.T) {
	v := NewView(nil, nil, okBus(nil))
	v.SetDimensions(100, 40)

	v, _ = v.Update(messages.SearchCompleted{
		Response: &domain.SearchResponse{
			Results: []domain.SearchResult{{Title: "One"}, {Title: "Two"}},
		},
	})

	assert.Len(t, v.Results(), 2)
	assert.NoError(t, v.Err())
	assert.Contains(t, v.View(), "Results (2)")
}

func TestSearchFailureRenderedVerbatim(t *testing.T) {
	bus := &recordingBus{res: result.Failf[any]("exa search (status 500): rate limited")}
	v := NewView(nil, nil, bus)
	v.SetDimensions(100, 40)
	v.SetQuery("anything")

	v2, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v2, _ = v2.Update(cmd())

	require.Error(t, v2.Err())
	assert.Contains(t, v2.View(), "exa search (status 500): rate limited")
}

func TestNilCommandBus(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(100, 40)
	v.SetQuery("query")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	errMsg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, ErrNoCommandBus)
}

func TestReplayDispatchesImmediately(t *testing.T) {
	bus := okBus(&domain.SearchResponse{RequestID: "replayed"})
	v := NewView(nil, nil, bus)
	v.SetDimensions(100, 40)

	cmd := v.Replay(domain.HistoryEntry{Query: "old query", Mode: domain.ModeResearch})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "old query", v.Query())
	assert.Equal(t, domain.ModeResearch, v.Mode())
	sent, ok := bus.lastPayload.(domain.WebSearchCommand)
	require.True(t, ok)
	assert.Equal(t, "old query", sent.Text)
	assert.Equal(t, domain.ModeResearch, sent.Mode)
}

func TestReset(t *testing.T) {
	v := NewView(nil, nil, okBus(nil))
	v.SetDimensions(100, 40)
	v.SetQuery("stale")
	v, _ = v.Update(messages.SearchCompleted{
		Response: &domain.SearchResponse{Results: []domain.SearchResult{{Title: "Old"}}},
	})

	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.True(t, v.InputFocused())
	assert.NoError(t, v.Err())
}
