package saga

// The combinators below are top-level generic functions rather than methods
// because Go methods cannot introduce new type parameters. Each one consumes
// its saga arguments and returns a new, independent Saga; the arguments must
// not be used after the call.

// MapAction maps a saga over its action type. The returned saga runs the
// original reaction function and applies transform to each produced action,
// preserving order and cardinality.
func MapAction[AR, A, A2 any](s Saga[AR, A], transform func(A) A2) Saga[AR, A2] {
	return Saga[AR, A2]{
		React: func(actionResult AR) []A2 {
			actions := s.React(actionResult)
			mapped := make([]A2, len(actions))
			for i, action := range actions {
				mapped[i] = transform(action)
			}
			return mapped
		},
	}
}

// MapActionResult maps a saga over its action-result type, contravariantly:
// the returned saga accepts an AR2, converts it to AR via transform, and
// delegates to the original reaction function. This lets a saga written
// against a narrow fact type be reused against a broader or differently
// shaped one by supplying an adapter.
func MapActionResult[AR, AR2, A any](s Saga[AR, A], transform func(AR2) AR) Saga[AR2, A] {
	return Saga[AR2, A]{
		React: func(actionResult AR2) []A {
			return s.React(transform(actionResult))
		},
	}
}

// Combine unifies two sagas with unrelated types into one saga over the
// tagged union of their domains. A First-tagged input is handled by s and
// its actions come back Second-tagged; a Second-tagged input is handled by
// other and its actions come back First-tagged. Exactly one branch runs per
// invocation, and order is preserved within it.
func Combine[AR, A, AR2, A2 any](s Saga[AR, A], other Saga[AR2, A2]) Saga[Sum[AR, AR2], Sum[A2, A]] {
	return Saga[Sum[AR, AR2], Sum[A2, A]]{
		React: func(actionResult Sum[AR, AR2]) []Sum[A2, A] {
			if ar, ok := actionResult.First(); ok {
				actions := s.React(ar)
				wrapped := make([]Sum[A2, A], len(actions))
				for i, action := range actions {
					wrapped[i] = Second[A2](action)
				}
				return wrapped
			}
			ar2, ok := actionResult.Second()
			if !ok {
				// Zero-valued Sum carries no input for either branch.
				return []Sum[A2, A]{}
			}
			actions := other.React(ar2)
			wrapped := make([]Sum[A2, A], len(actions))
			for i, action := range actions {
				wrapped[i] = First[A2, A](action)
			}
			return wrapped
		},
	}
}

// Merge joins two sagas that react to the same action-result type into one
// that runs both on each input: all of s's actions (Second-tagged) followed
// by all of other's actions (First-tagged). The tag-versus-position pairing
// is intentional and load-bearing; callers rely on this exact order.
func Merge[AR, A, A2 any](s Saga[AR, A], other Saga[AR, A2]) Saga[AR, Sum[A2, A]] {
	return Saga[AR, Sum[A2, A]]{
		React: func(actionResult AR) []Sum[A2, A] {
			actions := s.React(actionResult)
			actions2 := other.React(actionResult)
			merged := make([]Sum[A2, A], 0, len(actions)+len(actions2))
			for _, action := range actions {
				merged = append(merged, Second[A2](action))
			}
			for _, action := range actions2 {
				merged = append(merged, First[A2, A](action))
			}
			return merged
		},
	}
}
