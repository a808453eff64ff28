package opbench

import (
	"fmt"
	"strings"
)

// Op identifies one tracked operation kind. The numeric value is the
// tally slot in a Counter, fixed for the life of the program.
type Op int

const (
	OpNew        Op = iota // wrapper construction
	OpClone                // wrapper duplication
	OpDrop                 // wrapper release
	OpEq                   // equality test
	OpPartialCmp           // partial ordering test
	OpCmp                  // total ordering test

	numOps // sentinel, keep last
)

// NumOps is the number of tracked operation kinds.
const NumOps = int(numOps)

// opNames maps each slot to its stable, human-readable label.
// Order must match the Op constants above.
var opNames = [NumOps]string{"new", "clone", "drop", "eq", "partial_cmp", "cmp"}

// String returns the slot label for a valid Op.
func (op Op) String() string {
	if op < 0 || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// OpNames returns the ordered labels of the tracked operation kinds,
// in the same order as the tally slots. Reporting collaborators use
// this to title their columns; the counting path never does.
func OpNames() [NumOps]string {
	return opNames
}

// Counts is one tally per tracked operation kind, indexed by Op.
type Counts [NumOps]uint64

// Counter is the shared tally record for one counting session.
//
// The zero value is ready to use: all slots at zero. Within a session
// slots only ever increase. A Counter is not safe for concurrent use;
// a session drives all access from a single goroutine.
type Counter struct {
	counts Counts
}

// inc bumps one slot. Only the instrumented wrapper calls this.
func (c *Counter) inc(op Op) {
	c.counts[op]++
}

// Set overwrites all slots at once. Test harnesses use this to build
// an expected final state.
func (c *Counter) Set(counts Counts) {
	c.counts = counts
}

// Get returns a snapshot of the current tallies.
func (c *Counter) Get() Counts {
	return c.counts
}

// Equal reports whether both counters hold identical tallies in every
// slot.
func (c Counter) Equal(x Counter) bool {
	return c.counts == x.counts
}

// String renders the tallies as ordered label=value pairs.
func (c Counter) String() string {
	var b strings.Builder
	for op, count := range c.counts {
		if op > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", opNames[op], count)
	}
	return b.String()
}
