// Package opbench counts the operations an algorithm performs on its
// inputs.
//
// # Overview
//
// opbench wraps arbitrary ordered values so that every construction,
// clone, release, equality test, partial ordering test and total
// ordering test is tallied in a shared counter, without changing what
// the algorithm computes. Where a wall-clock benchmark answers "how
// long did this take", opbench answers "how many comparisons and
// copies did this make" — the quantity asymptotic analysis actually
// talks about, free of scheduler and cache noise.
//
// # Architecture
//
// The package components:
//
//   - Counter / Op    - fixed six-slot tally record, one slot per
//     tracked operation kind
//   - Instrumented    - transparent per-value wrapper that counts
//     before delegating to the inner value
//   - CountOps        - one counting session: wrap a batch, run the
//     caller's operation, report the final tallies
//   - Sweep / FitGrowth - doubling-size driver and power-law fit for
//     empirical verification of asymptotic bounds
//   - CounterCollector  - Prometheus bridge for the final tallies
//
// # Quick Start
//
// Count what sorting four reversed elements costs:
//
//	counts := opbench.CountOps([]int{3, 2, 1, 0}, func(xs []opbench.Instrumented[int]) {
//	    sort.Slice(xs, func(i, j int) bool { return xs[i].Less(xs[j]) })
//	})
//
//	fmt.Println(counts)
//	// new=4 clone=0 drop=0 eq=0 partial_cmp=6 cmp=0
//
// Verify a sort really is sub-quadratic:
//
//	results, err := opbench.Sweep(opbench.DefaultSweepConfig(), sortOp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fit, err := opbench.FitGrowth(results, opbench.OpPartialCmp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("comparisons grow as n^%.2f\n", fit.Exponent)
//
// # Counting Semantics
//
// Each wrapper operation increments its slot before delegating, so a
// tally means "invoked", not "completed". Construction and duplication
// count into separate slots: new tells you how many elements you
// started with, clone how many extra copies the algorithm made.
//
// Go has no deterministic destructor, so release is an explicit Drop
// call, idempotent per instance; DrainBatch covers whole-batch
// discards. CountOps snapshots the tallies after the operation returns
// and before draining its own working slice, so teardown drops are
// excluded from the reported result.
//
// # Testing
//
// Use the assertion helpers to pin operation counts in regular tests:
//
//	func TestSortAlreadySorted(t *testing.T) {
//	    counts := opbench.CountOps([]int{0, 1, 2, 3}, sortOp)
//	    opbench.AssertCounts(t, opbench.Counts{4, 0, 0, 0, 3, 0}, counts)
//	}
//
// AssertConservation checks the closed-system law (new + clone = drop)
// and AssertTransparent checks that instrumentation never changes the
// algorithm's outcome.
//
// # Philosophy
//
// Traditional benchmarks answer: "How fast is this?"
// opbench answers: "What does this cost, counted exactly?"
//
// Operation counts are deterministic for a deterministic algorithm and
// input, so regressions show up as an exact integer diff rather than a
// noisy percentage.
package opbench
