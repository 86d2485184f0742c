// Package engine implements the stat calculation. It is pure: the same
// inputs always produce the same output, and nothing here touches storage.
package engine

import (
	"math"

	"github.com/balanceforge/balance-api/internal/entities/balance"
)

// EnemyLevelScaling is the per-level multiplier step applied to enemy
// base stats: 10% per level above 1.
const EnemyLevelScaling = 0.1

// ClampLevel clamps a requested level to the minimum of 1.
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// CharacterStats computes the derived stats for a character. For each
// definition, in list order:
//
//	total = base_value
//	      + sum(attr_value * multiplier + base_bonus) over modifiers
//	      + (level-1) * per_level_bonus
//
// rounded to one decimal place. Attributes missing from baseAttributes
// contribute zero. The result contains exactly one entry per definition;
// stale entries from earlier calculations never survive.
func CharacterStats(baseAttributes map[string]float64, level int, defs []balance.StatDefinition) map[string]float64 {
	calculated := make(map[string]float64, len(defs))

	for _, def := range defs {
		total := def.BaseValue

		for _, mod := range def.Modifiers {
			total += baseAttributes[mod.Attribute]*mod.Multiplier + mod.BaseBonus
		}

		total += float64(level-1) * def.PerLevelBonus

		calculated[def.Name] = round1(total)
	}

	return calculated
}

// EnemyStats computes the derived stats for an enemy: every base stat is
// scaled uniformly by 1 + (level-1)*0.1 and rounded to one decimal place.
// At level 1 the result equals the base stats exactly.
func EnemyStats(baseStats map[string]float64, level int) map[string]float64 {
	multiplier := 1 + float64(level-1)*EnemyLevelScaling

	calculated := make(map[string]float64, len(baseStats))
	for name, value := range baseStats {
		calculated[name] = round1(value * multiplier)
	}

	return calculated
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
