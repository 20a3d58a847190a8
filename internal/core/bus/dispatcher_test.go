package bus

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

func echoHandler() HandlerFunc {
	return func(_ context.Context, payload any) result.Result[any] {
		return result.Ok(payload)
	}
}

func TestExecuteUnknownName(t *testing.T) {
	d := NewDispatcher(KindCommand)
	invoked := false
	d.Register("known", func(_ context.Context, _ any) result.Result[any] {
		invoked = true
		return result.Ok[any](nil)
	})

	res := d.Execute(context.Background(), "nonexistent-name", "anything")

	require.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), "nonexistent-name")
	assert.Contains(t, res.Error(), "command")
	assert.False(t, invoked, "no handler may run for an unknown name")
}

func TestExecuteHappyPath(t *testing.T) {
	d := NewDispatcher(KindQuery)
	d.Register("echo", echoHandler())

	res := d.Execute(context.Background(), "echo", 42)

	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Value())
}

func TestExecutePassesFailureThrough(t *testing.T) {
	d := NewDispatcher(KindCommand)
	d.Register("fails", func(_ context.Context, _ any) result.Result[any] {
		return result.Fail[any]("handler chose to report failure")
	})

	res := d.Execute(context.Background(), "fails", nil)

	require.True(t, res.IsFailure())
	assert.Equal(t, "handler chose to report failure", res.Error())
}

func TestExecuteContainsPanic(t *testing.T) {
	d := NewDispatcher(KindCommand)
	d.Register("explodes", func(_ context.Context, _ any) result.Result[any] {
		panic("wire fell out")
	})

	var res result.Result[any]
	require.NotPanics(t, func() {
		res = d.Execute(context.Background(), "explodes", nil)
	})

	require.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), "error executing command")
	assert.Contains(t, res.Error(), "wire fell out")
}

func TestRegisterOverwrites(t *testing.T) {
	d := NewDispatcher(KindCommand)
	d.Register("op", func(_ context.Context, _ any) result.Result[any] {
		return result.Ok[any]("first")
	})
	d.Register("op", func(_ context.Context, _ any) result.Result[any] {
		return result.Ok[any]("second")
	})

	res := d.Execute(context.Background(), "op", nil)

	require.True(t, res.IsSuccess())
	assert.Equal(t, "second", res.Value())
}

func TestRegisterHandlerTypeMismatch(t *testing.T) {
	d := NewDispatcher(KindQuery)
	RegisterHandler(d, "typed", HandlerFuncOf[int, string](
		func(_ context.Context, in int) result.Result[string] {
			return result.Ok("got int")
		}))

	res := d.Execute(context.Background(), "typed", "not an int")

	require.True(t, res.IsFailure())
	assert.Contains(t, res.Error(), "unexpected payload type")
}

func TestTypedExecute(t *testing.T) {
	d := NewDispatcher(KindQuery)
	RegisterHandler(d, "double", HandlerFuncOf[int, int](
		func(_ context.Context, in int) result.Result[int] {
			return result.Ok(in * 2)
		}))

	res := Execute[int](context.Background(), d, "double", 21)

	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Value())
}

func TestConcurrentExecutes(t *testing.T) {
	d := NewDispatcher(KindCommand)
	d.Register("echo", echoHandler())

	const calls = 64

	var wg sync.WaitGroup
	results := make([]result.Result[any], calls)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Execute(context.Background(), "echo", i)
		}(i)
	}
	wg.Wait()

	// Each call resolves to the outcome matching its own input.
	for i := 0; i < calls; i++ {
		require.True(t, results[i].IsSuccess())
		assert.Equal(t, i, results[i].Value())
	}
}

func TestNames(t *testing.T) {
	d := NewDispatcher(KindQuery)
	d.Register("a", echoHandler())
	d.Register("b", echoHandler())

	assert.ElementsMatch(t, []string{"a", "b"}, d.Names())
	assert.Equal(t, "query dispatcher (2 handlers)", d.String())
}
