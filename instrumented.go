package opbench

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Instrumented wraps one value of an ordered type and records every
// tracked operation on it in a shared Counter. It is transparent:
// every comparison delegates to the inner values, so an algorithm
// behaves identically whether it runs on []T or []Instrumented[T].
//
// All duplicates of a wrapper share the counter of their source. The
// counter is owned by the counting session, never by a single wrapper.
//
// Each operation counts itself before delegating, so an occurrence is
// recorded even if the delegated comparison panics: tallies reflect
// "operation was invoked", not "operation completed".
type Instrumented[T constraints.Ordered] struct {
	value   T
	base    *Counter
	dropped bool
}

// NewInstrumented wraps value and counts one construction. This is the
// only entry point that increments the new slot; Clone counts into its
// own slot instead, so new always equals the number of original
// wrappings.
func NewInstrumented[T constraints.Ordered](value T, base *Counter) Instrumented[T] {
	base.inc(OpNew)
	return Instrumented[T]{value: value, base: base}
}

// Value returns the inner value. Counts nothing.
func (x Instrumented[T]) Value() T {
	return x.value
}

// Clone counts one duplication and returns a new wrapper holding a
// copy of the inner value and the same shared counter, never a fresh
// one. Source and duplicate are independent afterwards with respect to
// the value; later operations on either increment the same counter.
func (x Instrumented[T]) Clone() Instrumented[T] {
	x.base.inc(OpClone)
	return Instrumented[T]{value: x.value, base: x.base}
}

// Drop releases the wrapper and counts one destruction.
//
// Go has no deterministic destructor, so release is explicit: every
// discard site must call Drop (DrainBatch covers the common case of
// discarding a whole batch). Repeat calls on the same instance are
// no-ops, so one logical instance can never count more than one drop.
func (x *Instrumented[T]) Drop() {
	if x.dropped {
		return
	}
	x.dropped = true
	x.base.inc(OpDrop)
}

// Eq counts one equality test and reports whether the inner values are
// equal. The result is exactly the inner values' result.
func (x Instrumented[T]) Eq(y Instrumented[T]) bool {
	x.base.inc(OpEq)
	return x.value == y.value
}

// PartialCompare counts one partial ordering test. It returns -1, 0 or
// +1 and ok=true when the inner values are comparable, and ok=false
// when they are not (a floating-point NaN on either side).
func (x Instrumented[T]) PartialCompare(y Instrumented[T]) (int, bool) {
	x.base.inc(OpPartialCmp)
	if x.value != x.value || y.value != y.value {
		return 0, false
	}
	return order(x.value, y.value), true
}

// Compare counts one total ordering test and returns -1, 0 or +1.
// Consistent with Eq for totally ordered inner values: Compare reports
// 0 exactly when Eq reports true.
func (x Instrumented[T]) Compare(y Instrumented[T]) int {
	x.base.inc(OpCmp)
	return order(x.value, y.value)
}

// Less reports x < y, routed through the partial order: it counts one
// partial_cmp, not a cmp. Incomparable operands are never less. This
// is the comparison a Less-based sort exercises.
func (x Instrumented[T]) Less(y Instrumented[T]) bool {
	ord, ok := x.PartialCompare(y)
	return ok && ord < 0
}

// String renders only the inner value. Inspection counts nothing.
func (x Instrumented[T]) String() string {
	return fmt.Sprint(x.value)
}

func order[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
