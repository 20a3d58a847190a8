// Package bus implements the in-process dispatch mechanism: a registry
// mapping operation names to handlers, looked up and invoked per call.
//
// Two Dispatcher instances exist in the application, one for commands and
// one for queries. They are identical in mechanism and differ only in the
// semantic label attached by convention: commands express an intent that may
// have side effects, queries are read-only.
//
// Every path through Execute terminates in a result.Result; the dispatcher
// never panics to its caller.
package bus
