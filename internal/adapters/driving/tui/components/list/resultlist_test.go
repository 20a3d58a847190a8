package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "1", Title: "First", URL: "https://example.com/1", Score: 0.9, Text: "first body"},
		{ID: "2", Title: "Second", URL: "https://example.com/2", Score: 0.8, Highlights: []string{"key passage"}},
		{ID: "3", Title: "Third", URL: "https://example.com/3", Score: 0.7, Summary: "a summary"},
	}
}

func TestResultListEmpty(t *testing.T) {
	l := NewResultList(nil)

	assert.True(t, l.IsEmpty())
	assert.Contains(t, l.View(), "No results")
	assert.Nil(t, l.SelectedResult())
}

func TestResultListSetResults(t *testing.T) {
	l := NewResultList(nil)

	l.SetResults(sampleResults())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.Selected())
	assert.Contains(t, l.View(), "Results (3)")
	assert.Contains(t, l.View(), "First")
	assert.Contains(t, l.View(), "https://example.com/1")
}

func TestResultListNavigation(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())
	require.NotNil(t, l.SelectedResult())
	assert.Equal(t, "Second", l.SelectedResult().Title)

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	// Does not move past the ends
	l.MoveUp()
	assert.Equal(t, 0, l.Selected())
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())
}

func TestResultListRendersSnippets(t *testing.T) {
	l := NewResultList(nil)
	l.SetDimensions(120, 30)
	l.SetResults(sampleResults())

	view := l.View()

	// Highlights and summaries are preferred over page text
	assert.Contains(t, view, "key passage")
	assert.Contains(t, view, "a summary")
	assert.Contains(t, view, "first body")
}

func TestResultListUntitled(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults([]domain.SearchResult{{ID: "x", URL: "https://example.com"}})

	assert.Contains(t, l.View(), "(Untitled)")
}

func TestResultListSetSelected(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults())

	l.SetSelected(2)
	assert.Equal(t, 2, l.Selected())

	// Out of range is ignored
	l.SetSelected(10)
	assert.Equal(t, 2, l.Selected())
	l.SetSelected(-1)
	assert.Equal(t, 2, l.Selected())
}
