package opbench

import (
	"math"
	"testing"
)

// syntheticSweep builds results whose partial_cmp tally follows
// count(n) = f(n) across doubling sizes.
func syntheticSweep(sizes []int, f func(n int) uint64) []SweepResult {
	results := make([]SweepResult, 0, len(sizes))
	for _, n := range sizes {
		var c Counter
		var counts Counts
		counts[OpPartialCmp] = f(n)
		counts[OpNew] = uint64(n)
		c.Set(counts)
		results = append(results, SweepResult{Size: n, Counts: c})
	}
	return results
}

// TestFitGrowth_Linear recovers exponent 1 from exactly linear
// tallies.
func TestFitGrowth_Linear(t *testing.T) {
	results := syntheticSweep([]int{8, 16, 32, 64}, func(n int) uint64 {
		return uint64(5 * n)
	})

	fit, err := FitGrowth(results, OpPartialCmp)
	if err != nil {
		t.Fatalf("FitGrowth failed: %v", err)
	}

	if math.Abs(fit.Exponent-1) > 1e-6 {
		t.Errorf("expected exponent 1, got %.6f", fit.Exponent)
	}
	if math.Abs(fit.Coefficient-5) > 1e-6 {
		t.Errorf("expected coefficient 5, got %.6f", fit.Coefficient)
	}
	if fit.RSquared < 0.999999 {
		t.Errorf("expected perfect fit, got R²=%.6f", fit.RSquared)
	}
}

// TestFitGrowth_Quadratic recovers exponent 2 from exactly quadratic
// tallies.
func TestFitGrowth_Quadratic(t *testing.T) {
	results := syntheticSweep([]int{8, 16, 32, 64}, func(n int) uint64 {
		return uint64(n * n)
	})

	fit, err := FitGrowth(results, OpPartialCmp)
	if err != nil {
		t.Fatalf("FitGrowth failed: %v", err)
	}

	if math.Abs(fit.Exponent-2) > 1e-6 {
		t.Errorf("expected exponent 2, got %.6f", fit.Exponent)
	}

	t.Logf("fit: count(n) ≈ %.3f·n^%.3f, R²=%.4f", fit.Coefficient, fit.Exponent, fit.RSquared)
}

// TestFitGrowth_SkipsZeroTallies verifies sizes without observations
// carry no weight.
func TestFitGrowth_SkipsZeroTallies(t *testing.T) {
	results := syntheticSweep([]int{8, 16, 32, 64}, func(n int) uint64 {
		if n == 8 {
			return 0
		}
		return uint64(3 * n)
	})

	fit, err := FitGrowth(results, OpPartialCmp)
	if err != nil {
		t.Fatalf("FitGrowth failed: %v", err)
	}

	if math.Abs(fit.Exponent-1) > 1e-6 {
		t.Errorf("zero tally skewed the fit: exponent %.6f", fit.Exponent)
	}
}

// TestFitGrowth_TooFewPoints verifies the error path.
func TestFitGrowth_TooFewPoints(t *testing.T) {
	results := syntheticSweep([]int{8}, func(n int) uint64 {
		return uint64(n)
	})

	if _, err := FitGrowth(results, OpPartialCmp); err == nil {
		t.Error("expected error for a single usable point")
	}

	// Clone slot is all zero in the synthetic sweep.
	if _, err := FitGrowth(results, OpClone); err == nil {
		t.Error("expected error for all-zero tallies")
	}
}

// TestFitGrowth_InvalidOp verifies the guard on the slot index.
func TestFitGrowth_InvalidOp(t *testing.T) {
	if _, err := FitGrowth(nil, Op(42)); err == nil {
		t.Error("expected error for an invalid operation kind")
	}
}

// TestGrowthFit_Predict verifies prediction applies the fitted
// power law.
func TestGrowthFit_Predict(t *testing.T) {
	fit := GrowthFit{Exponent: 2, Coefficient: 3}

	if got := fit.Predict(10); math.Abs(got-300) > 1e-9 {
		t.Errorf("Predict(10) = %.6f, want 300", got)
	}
}
