package character

import (
	"github.com/google/uuid"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/gauge"
)

// Default pool sizes applied by NewCombatant when no option overrides them.
const (
	DefaultMaxHealth  = 20
	DefaultMaxStamina = 10
)

// Combatant represents one participant in an arena match.
//
// Invariants: 0 <= CurrentHealth <= MaxHealth and
// 0 <= CurrentStamina <= MaxStamina at all times. The Gauge is exclusively
// owned by this combatant; the engine mutates it only through the defense
// and counter-attack paths.
type Combatant struct {
	ID       string
	Name     string
	Stats    Stats
	Position Position

	MaxHealth      int
	CurrentHealth  int
	MaxStamina     int
	CurrentStamina int

	Gauge *gauge.Gauge
}

// Option customizes a Combatant at construction time.
type Option func(*Combatant)

// WithStats replaces the default stat block.
func WithStats(s Stats) Option {
	return func(c *Combatant) { c.Stats = s }
}

// WithHealth sets both MaxHealth and CurrentHealth.
//
// Precondition: maxHealth >= 1.
func WithHealth(maxHealth int) Option {
	return func(c *Combatant) {
		c.MaxHealth = maxHealth
		c.CurrentHealth = maxHealth
	}
}

// WithStamina sets both MaxStamina and CurrentStamina.
//
// Precondition: maxStamina >= 0.
func WithStamina(maxStamina int) Option {
	return func(c *Combatant) {
		c.MaxStamina = maxStamina
		c.CurrentStamina = maxStamina
	}
}

// WithPosition sets the starting grid position.
func WithPosition(p Position) Option {
	return func(c *Combatant) { c.Position = p }
}

// WithGaugeMax sets the counter gauge threshold.
//
// Precondition: max >= 1.
func WithGaugeMax(max int) Option {
	return func(c *Combatant) { c.Gauge = gauge.New(max) }
}

// WithID overrides the generated UUID. Used by roster loading and tests.
func WithID(id string) Option {
	return func(c *Combatant) { c.ID = id }
}

// NewCombatant creates a Combatant with full pools, default stats, and an
// empty counter gauge at gauge.DefaultMax, then applies opts in order.
//
// Precondition: name must be non-empty.
// Postcondition: Returns a Combatant with a unique ID, CurrentHealth ==
// MaxHealth, CurrentStamina == MaxStamina, and Gauge.Current() == 0.
func NewCombatant(name string, opts ...Option) *Combatant {
	c := &Combatant{
		ID:             uuid.New().String(),
		Name:           name,
		Stats:          DefaultStats(),
		MaxHealth:      DefaultMaxHealth,
		CurrentHealth:  DefaultMaxHealth,
		MaxStamina:     DefaultMaxStamina,
		CurrentStamina: DefaultMaxStamina,
		Gauge:          gauge.New(gauge.DefaultMax),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AttackPoints returns the attack bonus, recomputed from Stats on each call.
func (c *Combatant) AttackPoints() int { return c.Stats.AttackPoints() }

// DefensePoints returns the defense bonus, recomputed from Stats on each call.
func (c *Combatant) DefensePoints() int { return c.Stats.DefensePoints() }

// MovementPoints returns the movement bonus, recomputed from Stats on each call.
func (c *Combatant) MovementPoints() int { return c.Stats.MovementPoints() }

// UseStamina deducts amount if the combatant has at least that much.
//
// Postcondition: Returns true and CurrentStamina is reduced by amount iff
// old CurrentStamina >= amount; returns false with state unchanged otherwise.
// CurrentStamina never goes negative.
func (c *Combatant) UseStamina(amount int) bool {
	if amount > c.CurrentStamina {
		return false
	}
	c.CurrentStamina -= amount
	return true
}

// RestoreStamina increases CurrentStamina by amount, clamping at MaxStamina.
//
// Precondition: amount >= 0.
// Postcondition: CurrentStamina <= MaxStamina.
func (c *Combatant) RestoreStamina(amount int) {
	c.CurrentStamina += amount
	if c.CurrentStamina > c.MaxStamina {
		c.CurrentStamina = c.MaxStamina
	}
}

// TakeDamage reduces CurrentHealth by amount, flooring at zero.
// Negative amounts are a no-op: damage never heals.
//
// Postcondition: CurrentHealth >= 0.
func (c *Combatant) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.CurrentHealth -= amount
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
}

// Heal increases CurrentHealth by amount, clamping at MaxHealth.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHealth <= MaxHealth.
func (c *Combatant) Heal(amount int) {
	c.CurrentHealth += amount
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
}

// IsAlive reports whether the combatant can still be targeted and act.
//
// Postcondition: Returns true iff CurrentHealth > 0.
func (c *Combatant) IsAlive() bool { return c.CurrentHealth > 0 }

// CanAct reports whether the combatant is alive with stamina to spend.
//
// Postcondition: Returns true iff IsAlive() and CurrentStamina > 0.
func (c *Combatant) CanAct() bool { return c.IsAlive() && c.CurrentStamina > 0 }
