package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balanceforge/balance-api/internal/engine"
	"github.com/balanceforge/balance-api/internal/entities/balance"
)

func healthDef() balance.StatDefinition {
	return balance.StatDefinition{
		Name:      "health",
		BaseValue: 100,
		Modifiers: []balance.AttributeModifier{
			{Attribute: "constitution", Multiplier: 5.0},
		},
		PerLevelBonus: 10.0,
	}
}

func powerDef() balance.StatDefinition {
	return balance.StatDefinition{
		Name:      "power",
		BaseValue: 20,
		Modifiers: []balance.AttributeModifier{
			{Attribute: "strength", Multiplier: 2.0},
		},
		PerLevelBonus: 2.0,
	}
}

func TestCharacterStats(t *testing.T) {
	attrs := map[string]float64{
		"strength":     15,
		"dexterity":    12,
		"constitution": 14,
		"intelligence": 10,
	}

	testCases := []struct {
		name  string
		attrs map[string]float64
		level int
		defs  []balance.StatDefinition
		want  map[string]float64
	}{
		{
			name:  "health at level 1",
			attrs: attrs,
			level: 1,
			defs:  []balance.StatDefinition{healthDef()},
			want:  map[string]float64{"health": 170.0},
		},
		{
			name:  "per level bonus applied above level 1",
			attrs: attrs,
			level: 5,
			defs:  []balance.StatDefinition{healthDef(), powerDef()},
			want:  map[string]float64{"health": 210.0, "power": 58.0},
		},
		{
			name:  "missing attribute contributes zero",
			attrs: map[string]float64{"dexterity": 12},
			level: 1,
			defs:  []balance.StatDefinition{healthDef()},
			want:  map[string]float64{"health": 100.0},
		},
		{
			name:  "flat base bonus applied per modifier",
			attrs: map[string]float64{"strength": 10, "dexterity": 8},
			level: 1,
			defs: []balance.StatDefinition{
				{
					Name:      "attack",
					BaseValue: 5,
					Modifiers: []balance.AttributeModifier{
						{Attribute: "strength", Multiplier: 1.0, BaseBonus: 2.0},
						{Attribute: "dexterity", Multiplier: 0.5, BaseBonus: 1.0},
					},
				},
			},
			want: map[string]float64{"attack": 22.0},
		},
		{
			name:  "result rounded to one decimal",
			attrs: map[string]float64{"dexterity": 11},
			level: 1,
			defs: []balance.StatDefinition{
				{
					Name:      "initiative",
					BaseValue: 10,
					Modifiers: []balance.AttributeModifier{
						{Attribute: "dexterity", Multiplier: 1.55},
					},
				},
			},
			want: map[string]float64{"initiative": 27.1},
		},
		{
			name:  "no definitions yields empty result",
			attrs: attrs,
			level: 3,
			defs:  nil,
			want:  map[string]float64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.CharacterStats(tc.attrs, tc.level, tc.defs)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCharacterStatsExactlyOneEntryPerDefinition(t *testing.T) {
	attrs := map[string]float64{"constitution": 14}

	got := engine.CharacterStats(attrs, 1, []balance.StatDefinition{healthDef()})
	assert.Len(t, got, 1)

	// Dropping a definition drops its entry; nothing is carried over.
	got = engine.CharacterStats(attrs, 1, nil)
	assert.Empty(t, got)
}

func TestCharacterStatsIdempotent(t *testing.T) {
	attrs := map[string]float64{"strength": 15, "constitution": 14}
	defs := []balance.StatDefinition{healthDef(), powerDef()}

	first := engine.CharacterStats(attrs, 4, defs)
	second := engine.CharacterStats(attrs, 4, defs)
	assert.Equal(t, first, second)
}

func TestEnemyStats(t *testing.T) {
	base := map[string]float64{"health": 80, "power": 25, "defense": 15}

	t.Run("level 1 equals base exactly", func(t *testing.T) {
		got := engine.EnemyStats(base, 1)
		assert.Equal(t, base, got)
	})

	t.Run("ten percent per level above 1", func(t *testing.T) {
		got := engine.EnemyStats(base, 3)
		assert.Equal(t, map[string]float64{"health": 96.0, "power": 30.0, "defense": 18.0}, got)
	})

	t.Run("scaled values rounded to one decimal", func(t *testing.T) {
		got := engine.EnemyStats(map[string]float64{"speed": 7}, 4)
		assert.Equal(t, map[string]float64{"speed": 9.1}, got)
	})

	t.Run("empty base stats", func(t *testing.T) {
		got := engine.EnemyStats(map[string]float64{}, 5)
		assert.Empty(t, got)
	})
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, engine.ClampLevel(0))
	assert.Equal(t, 1, engine.ClampLevel(-3))
	assert.Equal(t, 1, engine.ClampLevel(1))
	assert.Equal(t, 7, engine.ClampLevel(7))
}
