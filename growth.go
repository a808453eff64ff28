package opbench

import (
	"fmt"
	"math"
)

// GrowthFit describes an empirical power-law fit of one operation's
// tally across a sweep:
//
//	count(n) ≈ c·n^k
//
// Exponent 1 means linear growth, 2 quadratic. A comparison-based sort
// lands between 1 and 2 at practical sizes (n·log n has no fixed
// exponent; expect roughly 1.1–1.3 over a doubling sweep).
type GrowthFit struct {
	Exponent    float64 // k: growth order
	Coefficient float64 // c: scale factor
	RSquared    float64 // Goodness of fit in log space (1.0 = perfect)
}

// FitGrowth fits the tallies of one operation kind across a sweep to
// count(n) ≈ c·n^k.
//
// Uses linearization: log count = log c + k·log n is linear in log c
// and k. Solve via least squares over the log-log points, then recover
// c. Sizes with a zero tally carry no information on a log scale and
// are skipped; at least two usable points are required.
func FitGrowth(results []SweepResult, op Op) (GrowthFit, error) {
	if op < 0 || op >= numOps {
		return GrowthFit{}, fmt.Errorf("invalid operation kind %d", int(op))
	}

	var xs, ys []float64
	for _, r := range results {
		count := r.Counts.Get()[op]
		if count == 0 || r.Size < 1 {
			continue
		}
		xs = append(xs, math.Log(float64(r.Size)))
		ys = append(ys, math.Log(float64(count)))
	}

	if len(xs) < 2 {
		return GrowthFit{}, fmt.Errorf("need at least 2 sizes with nonzero %s tallies, got %d", op, len(xs))
	}

	// Normal equations for Y = b0 + b1·X, solved directly.
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}
	n := float64(len(xs))

	det := n*sumXX - sumX*sumX
	if math.Abs(det) < 1e-10 {
		return GrowthFit{}, fmt.Errorf("degenerate sweep: all usable sizes are equal")
	}

	b0 := (sumXX*sumY - sumX*sumXY) / det
	b1 := (n*sumXY - sumX*sumY) / det

	fit := GrowthFit{
		Exponent:    b1,
		Coefficient: math.Exp(b0),
	}

	// R² (coefficient of determination) in log space.
	meanY := sumY / n
	var ssRes, ssTot float64
	for i := range xs {
		predicted := b0 + b1*xs[i]
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	if ssTot == 0 {
		fit.RSquared = 1
	} else {
		fit.RSquared = 1 - ssRes/ssTot
	}

	return fit, nil
}

// Predict returns the fitted tally at batch size n.
func (g GrowthFit) Predict(n int) float64 {
	return g.Coefficient * math.Pow(float64(n), g.Exponent)
}
