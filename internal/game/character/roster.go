// Package character — roster definition schema and YAML loading.
package character

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a combatant archetype loaded from YAML. Zero-valued optional
// fields fall back to the package defaults at build time.
type Definition struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Stats      *Stats   `yaml:"stats"`
	MaxHealth  int      `yaml:"max_health"`
	MaxStamina int      `yaml:"max_stamina"`
	GaugeMax   int      `yaml:"gauge_max"`
	Position   Position `yaml:"position"`
}

// Validate checks that the definition satisfies basic invariants.
//
// Precondition: d must not be nil.
// Postcondition: Returns nil iff Name is non-empty and the optional pool and
// gauge fields are either zero (defaulted) or positive; returns an error on
// the first violation otherwise.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("combatant definition: name must not be empty")
	}
	if d.MaxHealth < 0 {
		return fmt.Errorf("combatant definition %q: max_health must be >= 0, got %d", d.Name, d.MaxHealth)
	}
	if d.MaxStamina < 0 {
		return fmt.Errorf("combatant definition %q: max_stamina must be >= 0, got %d", d.Name, d.MaxStamina)
	}
	if d.GaugeMax < 0 {
		return fmt.Errorf("combatant definition %q: gauge_max must be >= 0, got %d", d.Name, d.GaugeMax)
	}
	return nil
}

// Build constructs a live Combatant from the definition, applying package
// defaults for any zero-valued optional field.
//
// Precondition: d must pass Validate.
// Postcondition: Returns a Combatant with full pools and an empty gauge.
func (d *Definition) Build() *Combatant {
	opts := []Option{WithPosition(d.Position)}
	if d.ID != "" {
		opts = append(opts, WithID(d.ID))
	}
	if d.Stats != nil {
		opts = append(opts, WithStats(*d.Stats))
	}
	if d.MaxHealth > 0 {
		opts = append(opts, WithHealth(d.MaxHealth))
	}
	if d.MaxStamina > 0 {
		opts = append(opts, WithStamina(d.MaxStamina))
	}
	if d.GaugeMax > 0 {
		opts = append(opts, WithGaugeMax(d.GaugeMax))
	}
	return NewCombatant(d.Name, opts...)
}

// LoadDefinitionFromBytes parses a single combatant definition from raw YAML.
//
// Precondition: data must be valid YAML for a single Definition.
// Postcondition: Returns a validated *Definition, or an error.
func LoadDefinitionFromBytes(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing combatant YAML: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadRoster reads all *.yaml files in dir and returns the parsed definitions.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all definitions or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadRoster(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roster dir %q: %w", dir, err)
	}

	var defs []*Definition
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		def, err := LoadDefinitionFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
