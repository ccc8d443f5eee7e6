// Package confirm models the external confirmation capability consulted
// before destructive bulk operations. The data model never depends on it
// for correctness; a "no" outcome must leave all state unchanged.
package confirm

import "context"

// Confirmer resolves a yes/no decision for a destructive action
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Func adapts a function to the Confirmer interface
type Func func(ctx context.Context, message string) (bool, error)

func (f Func) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// Always approves every request. The TUI injects this after collecting
// the y/n interactively, since the event loop cannot block on a prompt.
var Always = Func(func(context.Context, string) (bool, error) { return true, nil })

// Never declines every request
var Never = Func(func(context.Context, string) (bool, error) { return false, nil })
