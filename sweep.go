package opbench

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// SweepConfig controls a sweep over growing batch sizes.
type SweepConfig struct {
	Start  int          // First batch size; must be positive
	End    int          // Last batch size, inclusive; sizes double from Start
	Seed   int64        // Shuffle seed; 0 seeds from the current time
	Logger *slog.Logger // Per-size progress at debug level; nil disables
}

// DefaultSweepConfig returns sensible defaults.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Start: 8,
		End:   1 << 10,
	}
}

// SweepResult holds the tallies of one counting session at one size.
type SweepResult struct {
	Size   int
	Counts Counter
}

// Sweep runs one counting session per batch size, doubling from
// cfg.Start while the size stays within cfg.End. Each session receives
// a shuffled batch of the values 0..size-1 and the same caller-supplied
// operation. Returns one result per size, smallest first.
//
// Reproducible sweeps pin cfg.Seed; the shuffle is the only source of
// randomness.
func Sweep(cfg SweepConfig, op func([]Instrumented[uint64])) ([]SweepResult, error) {
	if cfg.Start < 1 {
		return nil, fmt.Errorf("sweep start must be positive, got %d", cfg.Start)
	}
	if cfg.End < cfg.Start {
		return nil, fmt.Errorf("sweep end %d is below start %d", cfg.End, cfg.Start)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var results []SweepResult
	for n := cfg.Start; n <= cfg.End; n <<= 1 {
		batch := shuffledBatch(rng, n)
		counts := CountOps(batch, op)

		if cfg.Logger != nil {
			cfg.Logger.Debug("sweep step", "n", n, "counts", counts.String())
		}

		results = append(results, SweepResult{Size: n, Counts: counts})
	}

	return results, nil
}

// shuffledBatch returns the values 0..n-1 in random order.
func shuffledBatch(rng *rand.Rand, n int) []uint64 {
	batch := make([]uint64, n)
	for i := range batch {
		batch[i] = uint64(i)
	}
	rng.Shuffle(n, func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	return batch
}

// RenderTable writes sweep results as fixed-width columns, one row per
// batch size, with the tally slots titled by their stable labels.
func RenderTable(w io.Writer, results []SweepResult) {
	names := OpNames()
	header := append([]string{"n"}, names[:]...)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)

	for _, r := range results {
		row := make([]string, 0, NumOps+1)
		row = append(row, strconv.Itoa(r.Size))
		for _, count := range r.Counts.Get() {
			row = append(row, strconv.FormatUint(count, 10))
		}
		table.Append(row)
	}

	table.Render()
}
