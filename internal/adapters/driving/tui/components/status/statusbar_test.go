package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
)

func TestNewBarDefaults(t *testing.T) {
	b := NewBar(nil, nil)

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, domain.ModeSearch, b.Mode())
	assert.Zero(t, b.ResultCount())
}

func TestBarShowsMode(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(80)

	assert.Contains(t, b.View(), "[search]")

	b.SetMode(domain.ModeResearch)
	assert.Contains(t, b.View(), "[research]")
}

func TestBarSearchingState(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(80)

	b.SetState(StateSearching)

	assert.Contains(t, b.View(), "Searching...")
}

func TestBarErrorState(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)

	b.SetState(StateError)
	b.SetMessage("rate limited")

	assert.Contains(t, b.View(), "Error: rate limited")
}

func TestBarResultCount(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(80)

	b.SetState(StateResults)
	b.SetResultCount(7)

	assert.Contains(t, b.View(), "7 results")
}

func TestBarClear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("boom")
	b.SetResultCount(3)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	assert.Zero(t, b.ResultCount())
}
