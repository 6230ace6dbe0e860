// Package combat implements the turn-based combat resolution engine: attack
// resolution, the three defensive responses, and the counter-attack funded by
// the over-defense gauge.
//
// The engine exposes discrete synchronous operations; an external turn
// controller sequences them across combatants. No operation blocks, retries,
// or mutates state on a failure path.
package combat

import (
	"errors"
	"fmt"
)

// ErrNilCombatant is returned when a required actor reference is missing.
var ErrNilCombatant = errors.New("combat: combatant must not be nil")

// Stamina cost defaults. Injected via Config; never read as globals by the
// engine itself.
const (
	DefaultAttackCost = 3
	DefaultDefendCost = 2
	DefaultMoveCost   = 1
)

// Config carries the injectable stamina tuning values for one Engine.
type Config struct {
	// AttackCost is the stamina deducted by a successful ExecuteAttack.
	AttackCost int
	// DefendCost is the stamina deducted by the Defend response.
	DefendCost int
	// MoveCost is the stamina deducted by the Move (evasion) response.
	MoveCost int
}

// DefaultConfig returns the standard cost set: attack 3, defend 2, move 1.
func DefaultConfig() Config {
	return Config{
		AttackCost: DefaultAttackCost,
		DefendCost: DefaultDefendCost,
		MoveCost:   DefaultMoveCost,
	}
}

// Validate checks that all costs are non-negative.
//
// Postcondition: Returns nil iff every cost is >= 0.
func (c Config) Validate() error {
	if c.AttackCost < 0 {
		return fmt.Errorf("combat config: attack cost must be >= 0, got %d", c.AttackCost)
	}
	if c.DefendCost < 0 {
		return fmt.Errorf("combat config: defend cost must be >= 0, got %d", c.DefendCost)
	}
	if c.MoveCost < 0 {
		return fmt.Errorf("combat config: move cost must be >= 0, got %d", c.MoveCost)
	}
	return nil
}

// ActionKind identifies the resolved action recorded in a LogEntry.
type ActionKind int

const (
	ActionAttack ActionKind = iota
	ActionDefend
	ActionEvade
	ActionAbsorb
	ActionCounter
)

// String returns the human-readable name of the ActionKind.
//
// Postcondition: Returns one of "attack", "defend", "evade", "absorb",
// "counter", or "unknown".
func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionEvade:
		return "evade"
	case ActionAbsorb:
		return "absorb"
	case ActionCounter:
		return "counter"
	default:
		return "unknown"
	}
}
