// Package balance defines the game-balancing domain records: projects,
// stat definitions, characters, and enemies. These are passive data
// structures; all behavior lives in the engine and the orchestrator.
package balance

import "time"

// AttributeModifier contributes attribute_value * Multiplier + BaseBonus
// to a stat's total, once per point of the referenced attribute.
type AttributeModifier struct {
	// Attribute names are free-form; a name the character does not have
	// contributes zero rather than erroring.
	Attribute  string  `json:"attribute"`
	Multiplier float64 `json:"multiplier"`
	BaseBonus  float64 `json:"base_bonus"`
}

// StatDefinition describes how one derived stat is computed from base
// attributes and level.
type StatDefinition struct {
	Name          string              `json:"name"`
	BaseValue     float64             `json:"base_value"`
	Modifiers     []AttributeModifier `json:"modifiers"`
	PerLevelBonus float64             `json:"per_level_bonus"`
}

// Character is a player character owned by a project. CalculatedStats is
// a materialized cache of the last stat calculation and is recomputed on
// every mutation that can change it.
type Character struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Level           int                `json:"level"`
	BaseAttributes  map[string]float64 `json:"base_attributes"`
	CalculatedStats map[string]float64 `json:"calculated_stats"`
	CharacterClass  string             `json:"character_class,omitempty"`
}

// Enemy is an adversary owned by a project. Enemies do not use stat
// definitions; their calculated stats scale directly from BaseStats.
type Enemy struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	EnemyType       string             `json:"enemy_type"`
	Level           int                `json:"level"`
	BaseStats       map[string]float64 `json:"base_stats"`
	CalculatedStats map[string]float64 `json:"calculated_stats"`
}

// Project is the root document. Characters and enemies are embedded and
// have no identity outside their project. Version guards against lost
// updates on the whole-document write path.
type Project struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Attributes      []string         `json:"attributes"`
	StatDefinitions []StatDefinition `json:"stat_definitions"`
	Characters      []Character      `json:"characters"`
	Enemies         []Enemy          `json:"enemies"`
	FeaturesEnabled map[string]bool  `json:"features_enabled"`
	CreatedAt       time.Time        `json:"created_at"`
	Version         int64            `json:"version"`
}

// DefaultAttributes returns the attribute list new projects start with.
func DefaultAttributes() []string {
	return []string{"strength", "dexterity", "constitution", "intelligence"}
}

// DefaultFeatures returns the feature toggles new projects start with.
func DefaultFeatures() map[string]bool {
	return map[string]bool{
		"attributes": true,
		"stats":      true,
		"perks":      true,
		"classes":    true,
	}
}

// FindCharacter returns a pointer into Characters for the given ID, or nil.
func (p *Project) FindCharacter(id string) *Character {
	for i := range p.Characters {
		if p.Characters[i].ID == id {
			return &p.Characters[i]
		}
	}
	return nil
}

// FindEnemy returns a pointer into Enemies for the given ID, or nil.
func (p *Project) FindEnemy(id string) *Enemy {
	for i := range p.Enemies {
		if p.Enemies[i].ID == id {
			return &p.Enemies[i]
		}
	}
	return nil
}

// FindStatDefinition returns the index of the first definition with the
// given name, or -1. Names are not enforced unique; first match wins.
func (p *Project) FindStatDefinition(name string) int {
	for i := range p.StatDefinitions {
		if p.StatDefinitions[i].Name == name {
			return i
		}
	}
	return -1
}
