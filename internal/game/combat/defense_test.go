package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/character"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/combat"
)

// TestResolveDefense_NilDefender verifies the InvalidArgument path.
func TestResolveDefense_NilDefender(t *testing.T) {
	eng := newTestEngine(t, 0)
	_, err := eng.ResolveDefense(nil, combat.AttackResult{Damage: 5}, combat.ChoiceDefend)
	assert.ErrorIs(t, err, combat.ErrNilCombatant)
	assert.Equal(t, 0, eng.HistoryLen())
}

// TestResolveDefense_ScenarioA pins the contested-defense arithmetic:
// incoming 11 vs total defense 7 leaves blocked 7, final 4, over-defense 0.
func TestResolveDefense_ScenarioA(t *testing.T) {
	// ATK [3 4]=7, DEF [2 3]=5.
	eng := newTestEngine(t, 2, 3, 1, 2)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 4}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Endurance: 2}),
		character.WithHealth(20),
		character.WithStamina(10),
	)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 11, atk.Damage, "incoming damage = roll 7 + attack points 4")

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceDefend)
	require.NoError(t, err)
	result, ok := outcome.(combat.DefendResult)
	require.True(t, ok, "defend choice must yield a DefendResult")

	assert.Equal(t, combat.ActionDefend, result.Kind())
	assert.Equal(t, "DEF", result.Roll.Label)
	assert.Equal(t, 7, result.TotalDefense, "roll 5 + defense points 2")
	assert.Equal(t, 7, result.DamageBlocked)
	assert.Equal(t, 4, result.FinalDamage)
	assert.Equal(t, 0, result.CounterGained)
	assert.False(t, result.CounterReady)
	assert.Equal(t, 0, defender.Gauge.Current(), "no over-defense leaves the gauge unchanged")
	assert.Equal(t, 16, defender.CurrentHealth, "health reduced by exactly 4")
	assert.Equal(t, 8, defender.CurrentStamina, "defend costs 2 stamina")
}

// TestResolveDefense_OverDefenseFeedsGauge verifies over-defense charges the
// defender's gauge and sets CounterReady once the threshold is reached.
func TestResolveDefense_OverDefenseFeedsGauge(t *testing.T) {
	// ATK [1 2]=3 -> incoming 3; DEF [3 4]=7 + END 2 = 9 -> over-defense 6.
	eng := newTestEngine(t, 0, 1, 2, 3)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 0}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Endurance: 2}),
		character.WithGaugeMax(6),
	)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 3, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceDefend)
	require.NoError(t, err)
	result := outcome.(combat.DefendResult)

	assert.Equal(t, 3, result.DamageBlocked, "blocked is capped at incoming damage")
	assert.Equal(t, 0, result.FinalDamage)
	assert.Equal(t, 6, result.CounterGained)
	assert.True(t, result.CounterReady)
	assert.Equal(t, 6, defender.Gauge.Current())
	assert.Equal(t, defender.MaxHealth, defender.CurrentHealth, "fully blocked attack deals no damage")
}

// TestResolveDefense_GaugeClampsAtMax verifies repeated over-defense never
// pushes the gauge past its threshold.
func TestResolveDefense_GaugeClampsAtMax(t *testing.T) {
	// Two exchanges, each with over-defense 6 against a max-4 gauge.
	eng := newTestEngine(t, 0, 1, 2, 3, 0, 1, 2, 3)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 0}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Endurance: 2}),
		character.WithGaugeMax(4),
		character.WithStamina(10),
	)

	for i := 0; i < 2; i++ {
		atk, err := eng.ExecuteAttack(attacker, defender)
		require.NoError(t, err)
		require.True(t, atk.Success)
		_, err = eng.ResolveDefense(defender, atk, combat.ChoiceDefend)
		require.NoError(t, err)
		attacker.RestoreStamina(3)
	}
	assert.Equal(t, 4, defender.Gauge.Current(), "gauge must clamp at its max")
}

// TestResolveDefense_ScenarioC verifies the explicit take-damage path:
// full damage applied, no stamina cost, gauge value preserved.
func TestResolveDefense_ScenarioC(t *testing.T) {
	// ATK [3 4]=7 + STR 2 = 9.
	eng := newTestEngine(t, 2, 3)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 2}),
	)
	defender := character.NewCombatant("Bron",
		character.WithHealth(20),
		character.WithStamina(10),
	)
	defender.Gauge.Add(3)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 9, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceTakeDamage)
	require.NoError(t, err)
	result, ok := outcome.(combat.AbsorbResult)
	require.True(t, ok, "take-damage choice must yield an AbsorbResult")

	assert.Equal(t, combat.ActionAbsorb, result.Kind())
	assert.Equal(t, 9, result.Damage)
	assert.False(t, result.Fallback)
	assert.Equal(t, 11, defender.CurrentHealth, "health decreases by exactly 9")
	assert.Equal(t, 10, defender.CurrentStamina, "absorbing costs no stamina")
	assert.Equal(t, 3, defender.Gauge.Current(), "gauge before equals gauge after")
}

// TestResolveDefense_ScenarioD verifies the fallback path: a defender with
// zero stamina who chooses Defend absorbs the full damage with no fatal
// error, no deduction, and an explanatory message.
func TestResolveDefense_ScenarioD(t *testing.T) {
	eng := newTestEngine(t, 2, 3)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 4}),
	)
	defender := character.NewCombatant("Bron",
		character.WithHealth(20),
		character.WithStamina(0),
	)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 11, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceDefend)
	require.NoError(t, err, "stamina shortfall must never abort")
	result, ok := outcome.(combat.AbsorbResult)
	require.True(t, ok, "fallback must resolve as an AbsorbResult")

	assert.True(t, result.Fallback)
	assert.Contains(t, result.Message, "cannot defend")
	assert.Equal(t, 11, result.Damage)
	assert.Equal(t, 9, defender.CurrentHealth, "full incoming damage applied")
	assert.Equal(t, 0, defender.CurrentStamina, "fallback deducts zero stamina")
}

// TestResolveDefense_MoveFallback verifies the evasion path also degrades to
// absorb when the defender cannot afford MoveCost.
func TestResolveDefense_MoveFallback(t *testing.T) {
	eng := newTestEngine(t, 2, 3)
	attacker := character.NewCombatant("Aria")
	defender := character.NewCombatant("Bron", character.WithStamina(0))

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceMove)
	require.NoError(t, err)
	result, ok := outcome.(combat.AbsorbResult)
	require.True(t, ok)
	assert.True(t, result.Fallback)
	assert.Contains(t, result.Message, "cannot evade")
}

// TestResolveDefense_MoveSuccess verifies a winning evasion roll: zero
// damage, distance max(1, margin), gauge preserved.
func TestResolveDefense_MoveSuccess(t *testing.T) {
	// ATK [1 2]=3 + STR 0 = 3; EVASION [3 4]=7 + AGI 2 = 9 -> margin 6.
	eng := newTestEngine(t, 0, 1, 2, 3)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 0}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Agility: 2}),
		character.WithHealth(20),
		character.WithStamina(10),
	)
	defender.Gauge.Add(2)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 3, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceMove)
	require.NoError(t, err)
	result, ok := outcome.(combat.EvadeResult)
	require.True(t, ok, "move choice must yield an EvadeResult")

	assert.Equal(t, combat.ActionEvade, result.Kind())
	assert.Equal(t, "EVASION", result.Roll.Label)
	assert.Equal(t, 9, result.TotalEvasion)
	assert.True(t, result.Evaded)
	assert.Equal(t, 0, result.FinalDamage)
	assert.Equal(t, 6, result.Distance)
	assert.Equal(t, 20, defender.CurrentHealth)
	assert.Equal(t, 9, defender.CurrentStamina, "evasion costs 1 stamina")
	assert.Equal(t, 2, defender.Gauge.Current(), "evasion preserves the gauge")
}

// TestResolveDefense_MoveExactTieGrantsMinimumDistance verifies a zero margin
// still counts as a full evasion with distance 1.
func TestResolveDefense_MoveExactTieGrantsMinimumDistance(t *testing.T) {
	// ATK [3 4]=7 + STR 0 = 7; EVASION [2 3]=5 + AGI 2 = 7 -> margin 0.
	eng := newTestEngine(t, 2, 3, 1, 2)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 0}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Agility: 2}),
		character.WithHealth(20),
	)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 7, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceMove)
	require.NoError(t, err)
	result := outcome.(combat.EvadeResult)
	assert.True(t, result.Evaded)
	assert.Equal(t, 0, result.FinalDamage)
	assert.Equal(t, 1, result.Distance, "tie grants the minimum distance of 1")
	assert.Equal(t, 20, defender.CurrentHealth)
}

// TestResolveDefense_MoveFailure verifies a losing evasion roll applies the
// margin as damage and grants no distance.
func TestResolveDefense_MoveFailure(t *testing.T) {
	// ATK [5 6]=11 + STR 2 = 13; EVASION [1 2]=3 + AGI 2 = 5 -> margin -8.
	eng := newTestEngine(t, 4, 5, 0, 1)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 2}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Agility: 2}),
		character.WithHealth(20),
	)
	defender.Gauge.Add(2)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)
	require.Equal(t, 13, atk.Damage)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceMove)
	require.NoError(t, err)
	result := outcome.(combat.EvadeResult)
	assert.False(t, result.Evaded)
	assert.Equal(t, 8, result.FinalDamage)
	assert.Equal(t, 0, result.Distance)
	assert.Equal(t, 12, defender.CurrentHealth)
	assert.Equal(t, 2, defender.Gauge.Current(), "failed evasion preserves the gauge")
}

// TestResolveDefense_ExactBlock verifies the boundary where total defense
// equals incoming damage: nothing through, nothing over.
func TestResolveDefense_ExactBlock(t *testing.T) {
	// ATK [3 4]=7 + STR 0 = 7; DEF [2 3]=5 + END 2 = 7.
	eng := newTestEngine(t, 2, 3, 1, 2)
	attacker := character.NewCombatant("Aria",
		character.WithStats(character.Stats{Strength: 0}),
	)
	defender := character.NewCombatant("Bron",
		character.WithStats(character.Stats{Endurance: 2}),
		character.WithHealth(20),
	)

	atk, err := eng.ExecuteAttack(attacker, defender)
	require.NoError(t, err)

	outcome, err := eng.ResolveDefense(defender, atk, combat.ChoiceDefend)
	require.NoError(t, err)
	result := outcome.(combat.DefendResult)
	assert.Equal(t, 7, result.DamageBlocked)
	assert.Equal(t, 0, result.FinalDamage)
	assert.Equal(t, 0, result.CounterGained)
	assert.Equal(t, 20, defender.CurrentHealth)
	assert.Equal(t, 0, defender.Gauge.Current())
}
