package opbench

import "golang.org/x/exp/constraints"

// CountOps runs op against a freshly instrumented copy of batch and
// returns the final tallies.
//
// A fresh Counter is allocated per call and shared by every wrapper in
// the batch. Wrapping preserves order and counts one new per element,
// so the new slot equals len(batch) before op runs. The operation may
// reorder, compare, clone or drop elements arbitrarily; every such
// action routes through the wrapper's counted operations.
//
// The snapshot is taken immediately after op returns, before the
// session drains its working slice: teardown drops of wrappers still
// alive at that point are not visible in the result. The drop slot
// therefore reports only releases performed by op itself, and a run
// that never discards anything reports drop=0.
//
// CountOps cannot fail. An empty batch returns the zero Counter. A
// panic inside op propagates unchanged; the Counter's partial tallies
// are then unspecified and unused.
func CountOps[T constraints.Ordered](batch []T, op func([]Instrumented[T])) Counter {
	var base Counter
	wrapped := make([]Instrumented[T], 0, len(batch))
	for _, v := range batch {
		wrapped = append(wrapped, NewInstrumented(v, &base))
	}

	op(wrapped)

	snapshot := base
	DrainBatch(wrapped)
	return snapshot
}

// DrainBatch releases every wrapper in batch exactly once. It is the
// canonical discard site for operations that shrink or replace a batch
// mid-run; Drop's idempotence makes draining an already released
// element harmless.
func DrainBatch[T constraints.Ordered](batch []Instrumented[T]) {
	for i := range batch {
		batch[i].Drop()
	}
}

// Values unwraps a batch back to its inner values, preserving order.
// Counts nothing.
func Values[T constraints.Ordered](batch []Instrumented[T]) []T {
	out := make([]T, len(batch))
	for i, x := range batch {
		out[i] = x.Value()
	}
	return out
}
