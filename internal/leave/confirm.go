package leave

import "context"

// DeletePrompt is the question shown before a record is removed.
const DeletePrompt = "Are you sure you want to delete this record?"

// Confirmer is the host's blocking yes/no dialog.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Answer is a Confirmer whose reply is already known, e.g. from a
// "confirm=true" query parameter.
type Answer bool

func (a Answer) Confirm(context.Context, string) bool {
	return bool(a)
}
