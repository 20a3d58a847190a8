package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Mode.Keys(), "tab")
	assert.Contains(t, km.Back.Keys(), "esc")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("tab", km.Mode))
	assert.False(t, Matches("x", km.Quit))
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
}

func TestResultsHelpIncludesMode(t *testing.T) {
	km := DefaultKeyMap()

	found := false
	for _, b := range km.ResultsHelp() {
		if Matches("tab", b) {
			found = true
		}
	}
	assert.True(t, found, "results help should include the mode toggle")
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	rows := km.FullHelp()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.NotEmpty(t, row)
	}
}
