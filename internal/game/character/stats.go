// Package character defines the combatant domain model: stat blocks, bounded
// health and stamina pools, grid position, and the owned counter gauge.
package character

// DefaultStatValue is the starting value for every attribute.
const DefaultStatValue = 10

// Stats holds the six core attribute values for a combatant.
//
// Values are unconstrained integers: zero and negative attributes are legal
// and simply produce weak derived points.
type Stats struct {
	Strength     int `yaml:"strength"`
	Endurance    int `yaml:"endurance"`
	Charisma     int `yaml:"charisma"`
	Intelligence int `yaml:"intelligence"`
	Agility      int `yaml:"agility"`
	Wisdom       int `yaml:"wisdom"`
}

// DefaultStats returns a stat block with every attribute at DefaultStatValue.
func DefaultStats() Stats {
	return Stats{
		Strength:     DefaultStatValue,
		Endurance:    DefaultStatValue,
		Charisma:     DefaultStatValue,
		Intelligence: DefaultStatValue,
		Agility:      DefaultStatValue,
		Wisdom:       DefaultStatValue,
	}
}

// AttackPoints returns the flat attack bonus derived from the stat block.
// Rule set: direct-stat mapping, ATK = Strength.
func (s Stats) AttackPoints() int { return s.Strength }

// DefensePoints returns the flat defense bonus derived from the stat block.
// Rule set: direct-stat mapping, DEF = Endurance.
func (s Stats) DefensePoints() int { return s.Endurance }

// MovementPoints returns the flat evasion/movement bonus derived from the
// stat block. Rule set: direct-stat mapping, MOV = Agility.
func (s Stats) MovementPoints() int { return s.Agility }

// Position is a combatant's location on the arena grid. The engine never
// interprets coordinates; movement granted by evasion is consumed by the
// external turn layer.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
