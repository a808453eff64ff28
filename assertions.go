package opbench

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/exp/constraints"
)

// AssertCounts fails the test unless got holds exactly the expected
// tallies.
func AssertCounts(t *testing.T, want Counts, got Counter) {
	t.Helper()

	var w Counter
	w.Set(want)

	if !got.Equal(w) {
		t.Errorf("operation counts mismatch:\n  want %s\n  got  %s", w, got)
		return
	}

	t.Logf("✓ counts: %s", got)
}

// AssertConservation verifies the closed-system law: every wrapper
// created via new or clone was released exactly once.
//
// The tallies must be observed after every discard site has run; a
// CountOps snapshot excludes the session's own teardown drops, so use
// this on a counter you wrapped and drained yourself, or on a run
// whose operation releases everything it creates.
func AssertConservation(t *testing.T, c Counter) {
	t.Helper()

	counts := c.Get()
	created := counts[OpNew] + counts[OpClone]
	dropped := counts[OpDrop]

	if created != dropped {
		t.Errorf("wrapper conservation violated: new+clone = %d, drop = %d\n"+
			"Some instrumented value was leaked or released twice.",
			created, dropped)
		return
	}

	t.Logf("✓ conservation: new+clone = drop = %d", dropped)
}

// AssertTransparent verifies instrumentation is value-transparent:
// running op on an instrumented copy of batch must leave the same
// values in the same order as running raw on the plain batch.
func AssertTransparent[T constraints.Ordered](t *testing.T, batch []T, op func([]Instrumented[T]), raw func([]T)) {
	t.Helper()

	var got []T
	CountOps(batch, func(xs []Instrumented[T]) {
		op(xs)
		got = Values(xs)
	})

	want := append([]T(nil), batch...)
	raw(want)

	if !slices.Equal(got, want) {
		t.Errorf("instrumentation altered the outcome:\n  want %v\n  got  %v", want, got)
		return
	}

	t.Logf("✓ transparent: %d values, identical order", len(want))
}

// PrintSweep outputs the sweep table and per-operation growth fits to
// the test log.
func PrintSweep(t *testing.T, results []SweepResult) {
	t.Helper()

	var b strings.Builder
	RenderTable(&b, results)
	t.Logf("\n=== Sweep ===\n%s", b.String())

	t.Logf("Growth fits:")
	for op := OpNew; op < numOps; op++ {
		fit, err := FitGrowth(results, op)
		if err != nil {
			t.Logf("  %-11s (no fit: %v)", op, err)
			continue
		}
		t.Logf("  %-11s count(n) ≈ %.3f·n^%.3f  R²=%.4f", op, fit.Coefficient, fit.Exponent, fit.RSquared)
	}
}
