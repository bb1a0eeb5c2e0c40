// Package rotate picks random content items without repeating the one on screen.
package rotate

import "math/rand/v2"

// IntN returns a uniform integer in [0, n).
type IntN func(n int) int

// DefaultIntN draws from the process-wide math/rand/v2 source.
func DefaultIntN(n int) int {
	return rand.IntN(n)
}

// Pick returns a random candidate that differs from current.
//
// With no candidates it returns the zero value and false. With a single
// candidate, or when every candidate equals current, it returns that value
// unchanged. Two candidates always yield the other one.
func Pick[T comparable](candidates []T, current T, intn IntN) (T, bool) {
	var zero T
	switch len(candidates) {
	case 0:
		return zero, false
	case 1:
		return candidates[0], true
	case 2:
		if candidates[0] == current {
			return candidates[1], true
		}
		if candidates[1] == current {
			return candidates[0], true
		}
	}

	if intn == nil {
		intn = DefaultIntN
	}

	if !hasOther(candidates, current) {
		return current, true
	}

	for {
		next := candidates[intn(len(candidates))]
		if next != current {
			return next, true
		}
	}
}

func hasOther[T comparable](candidates []T, current T) bool {
	for _, c := range candidates {
		if c != current {
			return true
		}
	}
	return false
}

// Rotator holds the item on display for one panel plus its transition flag.
// It is owned by a single event loop and is not safe for concurrent use.
type Rotator[T comparable] struct {
	candidates []T
	current    T
	changing   bool
	intn       IntN
}

// New creates a rotator showing the first candidate.
func New[T comparable](candidates []T, intn IntN) *Rotator[T] {
	if intn == nil {
		intn = DefaultIntN
	}
	r := &Rotator[T]{
		candidates: candidates,
		intn:       intn,
	}
	if len(candidates) > 0 {
		r.current = candidates[0]
	}
	return r
}

// Current returns the item on display.
func (r *Rotator[T]) Current() T { return r.current }

// Changing reports whether a transition is pending.
func (r *Rotator[T]) Changing() bool { return r.changing }

// Len returns the number of candidates.
func (r *Rotator[T]) Len() int { return len(r.candidates) }

// Begin marks the start of a transition. It returns false when a transition
// is already pending, so callers schedule at most one swap at a time.
func (r *Rotator[T]) Begin() bool {
	if r.changing {
		return false
	}
	r.changing = true
	return true
}

// Commit swaps in a new item and clears the transition flag.
func (r *Rotator[T]) Commit() T {
	if next, ok := Pick(r.candidates, r.current, r.intn); ok {
		r.current = next
	}
	r.changing = false
	return r.current
}

// Shuffle replaces the current item with a uniform draw over all
// candidates, repeats included. Panels use it for their first item.
func (r *Rotator[T]) Shuffle() T {
	if len(r.candidates) > 0 {
		r.current = r.candidates[r.intn(len(r.candidates))]
	}
	return r.current
}

// Next swaps immediately, for callers with nothing to animate.
func (r *Rotator[T]) Next() T {
	r.Begin()
	return r.Commit()
}
