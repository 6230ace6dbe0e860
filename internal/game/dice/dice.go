// Package dice provides the core randomness abstraction and roll-result types
// for the arena combat engine.
package dice

import "fmt"

// Sides is the number of faces on every die rolled by the engine.
const Sides = 6

// DiceRoll holds the full audit trail for a single- or double-die roll.
//
// Invariant: Die1 is in [1, Sides]. Die2 == 0 marks a single-die roll with
// Total == Die1; otherwise Die2 is in [1, Sides] and Total == Die1 + Die2.
type DiceRoll struct {
	Die1  int    // first die result, always in [1, Sides]
	Die2  int    // second die result; 0 for single-die rolls
	Total int    // Die1, or Die1 + Die2 for double rolls
	Label string // caller-supplied tag, e.g. "ATK", "DEF", "COUNTER"
}

// IsDouble reports whether this roll used two dice.
//
// Postcondition: Returns true iff Die2 != 0.
func (r DiceRoll) IsDouble() bool { return r.Die2 != 0 }

// String returns a human-readable audit string in the format:
//
//	"ATK → [3 5] = 8"  (double roll)
//	"INIT → [4] = 4"   (single roll)
//
// Precondition: r.Label is non-empty.
func (r DiceRoll) String() string {
	if r.Label == "" {
		panic("dice: DiceRoll.String() precondition violated: Label must be non-empty")
	}
	if r.IsDouble() {
		return fmt.Sprintf("%s → [%d %d] = %d", r.Label, r.Die1, r.Die2, r.Total)
	}
	return fmt.Sprintf("%s → [%d] = %d", r.Label, r.Die1, r.Total)
}

// Source is the randomness provider for dice rolls.
//
// A Source is exclusively owned by one Roller (and therefore one combat
// engine). Sharing a seeded Source across engines voids the determinism
// guarantee: the interleaved call order becomes unpredictable.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Single rolls one die using src and returns the labelled result.
//
// Precondition: src must be non-nil; label must be non-empty.
// Postcondition: result.Die1 in [1, Sides], result.Die2 == 0,
// result.Total == result.Die1.
func Single(src Source, label string) DiceRoll {
	d1 := src.Intn(Sides) + 1
	return DiceRoll{Die1: d1, Die2: 0, Total: d1, Label: label}
}

// Double rolls two dice using src and returns the labelled result.
//
// Precondition: src must be non-nil; label must be non-empty.
// Postcondition: result.Die1 and result.Die2 in [1, Sides],
// result.Total == result.Die1 + result.Die2.
func Double(src Source, label string) DiceRoll {
	d1 := src.Intn(Sides) + 1
	d2 := src.Intn(Sides) + 1
	return DiceRoll{Die1: d1, Die2: d2, Total: d1 + d2, Label: label}
}
