// Package gauge implements the bounded counter-streak accumulator.
//
// A Gauge fills through over-defense and, once full, funds exactly one
// counter-attack. Consumption is all-or-nothing: a partially filled gauge
// cannot be spent.
package gauge

// DefaultMax is the gauge threshold used when no explicit maximum is injected.
const DefaultMax = 6

// Gauge is a bounded accumulator in [0, max].
//
// Invariant: current only increases via Add with a positive amount (clamped
// at max) and only returns to 0 via Consume or Reset.
type Gauge struct {
	current int
	max     int
}

// New creates an empty Gauge with the given threshold.
//
// Precondition: max >= 1. Panics with "gauge: max must be >= 1" otherwise.
// Postcondition: Current() == 0 and Max() == max.
func New(max int) *Gauge {
	if max < 1 {
		panic("gauge: max must be >= 1")
	}
	return &Gauge{current: 0, max: max}
}

// Current returns the accumulated charge.
//
// Postcondition: Returns a value in [0, Max()].
func (g *Gauge) Current() int { return g.current }

// Max returns the consumption threshold.
func (g *Gauge) Max() int { return g.max }

// Add increases the charge by amount, clamping at Max.
// Non-positive amounts are a no-op.
//
// Postcondition: Current() == min(Max(), old Current() + amount) when
// amount > 0; unchanged otherwise.
func (g *Gauge) Add(amount int) {
	if amount <= 0 {
		return
	}
	g.current += amount
	if g.current > g.max {
		g.current = g.max
	}
}

// Consume spends the full gauge. It succeeds only when the gauge is ready,
// resetting the charge to 0; otherwise it fails and mutates nothing.
//
// Postcondition: Returns true and Current() == 0 iff old Current() >= Max();
// returns false with state unchanged otherwise.
func (g *Gauge) Consume() bool {
	if g.current < g.max {
		return false
	}
	g.current = 0
	return true
}

// Reset unconditionally clears the charge.
//
// Postcondition: Current() == 0.
func (g *Gauge) Reset() {
	g.current = 0
}

// IsReady reports whether the gauge can fund a counter-attack.
//
// Postcondition: Returns true iff Current() >= Max().
func (g *Gauge) IsReady() bool { return g.current >= g.max }

// FillPercentage returns the charge as a fraction of the threshold.
//
// Postcondition: Returns Current()/Max() in [0.0, 1.0].
func (g *Gauge) FillPercentage() float64 {
	return float64(g.current) / float64(g.max)
}
