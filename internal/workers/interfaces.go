// Package workers runs deferred units of work that are bound to a context.
//
// The access flows simulate a slow backend by delaying the final state
// change. That delay is modelled as a [Worker] so the owner of the context
// (a TUI page, an HTTP request) can cancel it: a cancelled worker never runs
// its mutation.
package workers

import "context"

// Worker is a unit of work that blocks until it is done or ctx ends.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work, return ctx.Err() if interrupted
//	}
type Worker interface {
	Run(ctx context.Context) error
}
