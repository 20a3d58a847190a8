package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/lookfar-cli/internal/core/result"
	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// Kind labels a Dispatcher as the command or query side.
type Kind string

// Dispatcher kinds.
const (
	KindCommand Kind = "command"
	KindQuery   Kind = "query"
)

// HandlerFunc is the erased form a handler takes inside the registry.
// Typed handlers are adapted through RegisterHandler.
type HandlerFunc func(ctx context.Context, payload any) result.Result[any]

// Handler is the typed contract for a unit of business logic. Every failure
// mode must be translated into a failure Result; the Dispatcher additionally
// safety-nets panics. Implementations must be safe for concurrent use by
// multiple goroutines: the Dispatcher applies no per-name serialisation.
type Handler[In any, Out any] interface {
	Handle(ctx context.Context, in In) result.Result[Out]
}

// Dispatcher routes named operations to their registered handlers.
// Registration is expected to happen once at composition time; the registry
// is guarded so a late Register cannot race an in-flight Execute.
type Dispatcher struct {
	kind Kind

	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewDispatcher creates an empty dispatcher for the given kind.
func NewDispatcher(kind Kind) *Dispatcher {
	return &Dispatcher{
		kind:     kind,
		handlers: make(map[string]HandlerFunc),
	}
}

// Kind returns the dispatcher's semantic label.
func (d *Dispatcher) Kind() Kind {
	return d.kind
}

// Register maps name to handler. A name may hold at most one handler;
// registering again replaces the previous entry (last write wins).
func (d *Dispatcher) Register(name string, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[name]; exists {
		logger.Debug("bus: replacing %s handler %q", d.kind, name)
	}
	d.handlers[name] = handler
}

// Execute looks up the handler registered under name and invokes it with
// payload. An unknown name and a panicking handler both come back as failure
// Results; a handler-returned failure passes through unchanged. Execute
// never panics.
func (d *Dispatcher) Execute(ctx context.Context, name string, payload any) (res result.Result[any]) {
	d.mu.RLock()
	handler, ok := d.handlers[name]
	d.mu.RUnlock()

	if !ok {
		return result.Failf[any]("no handler registered for %s: %s", d.kind, name)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("bus: %s %q panicked: %v", d.kind, name, r)
			res = result.Failf[any]("error executing %s: %v", d.kind, r)
		}
	}()

	logger.Debug("bus: executing %s %q", d.kind, name)
	return handler(ctx, payload)
}

// RegisterHandler adapts a typed handler onto a dispatcher entry.
// A payload of the wrong dynamic type yields a failure Result at dispatch
// time rather than a panic.
func RegisterHandler[In any, Out any](d *Dispatcher, name string, h Handler[In, Out]) {
	d.Register(name, func(ctx context.Context, payload any) result.Result[any] {
		in, ok := payload.(In)
		if !ok {
			return result.Failf[any]("%s %s: unexpected payload type %T", d.kind, name, payload)
		}
		return result.ToAny(h.Handle(ctx, in))
	})
}

// Execute is the typed companion to Dispatcher.Execute: it restores the
// handler's output type after the erased round trip.
func Execute[Out any](ctx context.Context, d *Dispatcher, name string, payload any) result.Result[Out] {
	return result.FromAny[Out](d.Execute(ctx, name, payload))
}

// HandlerFuncOf wraps a plain function as a typed Handler.
type HandlerFuncOf[In any, Out any] func(ctx context.Context, in In) result.Result[Out]

// Handle implements Handler.
func (f HandlerFuncOf[In, Out]) Handle(ctx context.Context, in In) result.Result[Out] {
	return f(ctx, in)
}

// Names returns the registered operation names, for diagnostics.
func (d *Dispatcher) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}

// String implements fmt.Stringer.
func (d *Dispatcher) String() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fmt.Sprintf("%s dispatcher (%d handlers)", d.kind, len(d.handlers))
}
