package saga

// ReactFunc decides what to execute next based on a single action result.
// It returns an ordered, finite sequence of follow-up actions; an empty
// result means no reaction.
//
// Implementations must be pure: deterministic for the same input, no hidden
// mutable state, no I/O. The library does not (and cannot) enforce this; it
// is the contract every combinator relies on. A ReactFunc shared across
// goroutines must be safe to invoke concurrently, since Saga adds no
// synchronization of its own.
type ReactFunc[AR, A any] func(actionResult AR) []A

// Saga is the central point of control in a reactive orchestration: given
// an action result of type AR (typically a domain event, or the outcome of
// a remote call), it decides which actions of type A (typically commands)
// to issue next.
//
// A Saga owns exactly one reaction function and holds no other state and no
// external resources. Sagas compose with MapAction, MapActionResult,
// Combine, and Merge; each combinator consumes its inputs and returns a new
// independent Saga, and the inputs must not be used again afterwards.
type Saga[AR, A any] struct {
	// React drives the next actions based on the action result.
	React ReactFunc[AR, A]
}

// NewSaga wraps a reaction function in a Saga. The function is accepted as
// given; no validation is performed.
func NewSaga[AR, A any](react ReactFunc[AR, A]) Saga[AR, A] {
	return Saga[AR, A]{React: react}
}

// ComputeNewActions runs the wrapped reaction function on the given action
// result and returns its output unchanged. This is the only operation that
// executes a saga; combinators build structure without invoking anything.
//
// Any failure behavior (a panic, say) of the underlying reaction function
// propagates to the caller unmediated.
func (s Saga[AR, A]) ComputeNewActions(actionResult AR) []A {
	return s.React(actionResult)
}

// NewConstantSaga returns a saga that reacts to every action result with
// the same fixed sequence of actions.
func NewConstantSaga[AR, A any](actions ...A) Saga[AR, A] {
	return Saga[AR, A]{
		React: func(AR) []A {
			out := make([]A, len(actions))
			copy(out, actions)
			return out
		},
	}
}

// NewEmptySaga returns a saga that never reacts. Merging it with another
// saga leaves that saga's output sequence unchanged.
func NewEmptySaga[AR, A any]() Saga[AR, A] {
	return Saga[AR, A]{
		React: func(AR) []A {
			return []A{}
		},
	}
}
