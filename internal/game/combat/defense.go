package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/character"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/dice"
)

// DefenseChoice selects how a defender responds to an incoming attack.
type DefenseChoice int

const (
	// ChoiceDefend contests the damage with a defense roll; over-defense
	// feeds the counter gauge.
	ChoiceDefend DefenseChoice = iota
	// ChoiceMove contests the damage with an evasion roll; success grants
	// movement distance instead of gauge charge.
	ChoiceMove
	// ChoiceTakeDamage absorbs the full damage at no stamina cost.
	ChoiceTakeDamage
)

// String returns the human-readable name of the DefenseChoice.
func (d DefenseChoice) String() string {
	switch d {
	case ChoiceDefend:
		return "defend"
	case ChoiceMove:
		return "move"
	case ChoiceTakeDamage:
		return "take damage"
	default:
		return "unknown"
	}
}

// DefenseOutcome is the tagged result of ResolveDefense. Each concrete type
// carries only the fields relevant to its variant; callers dispatch with a
// type switch.
type DefenseOutcome interface {
	// Kind identifies the variant: ActionDefend, ActionEvade, or ActionAbsorb.
	Kind() ActionKind
	// DamageTaken is the health actually lost by the defender.
	DamageTaken() int
	// Narrative is the message describing what happened.
	Narrative() string
}

// DefendResult is the outcome of a contested defense roll.
type DefendResult struct {
	DefenderID   string
	DefenderName string
	// Roll is the double-die "DEF" roll.
	Roll dice.DiceRoll
	// TotalDefense is roll total + defender defense points.
	TotalDefense int
	// DamageBlocked is min(TotalDefense, incoming damage).
	DamageBlocked int
	// FinalDamage is max(0, incoming damage - TotalDefense).
	FinalDamage int
	// CounterGained is the over-defense added to the gauge this action.
	CounterGained int
	// CounterReady reports the gauge state after the addition.
	CounterReady bool
	Message      string
}

// Kind returns ActionDefend.
func (r DefendResult) Kind() ActionKind { return ActionDefend }

// DamageTaken returns FinalDamage.
func (r DefendResult) DamageTaken() int { return r.FinalDamage }

// Narrative returns the message describing the defense.
func (r DefendResult) Narrative() string { return r.Message }

// EvadeResult is the outcome of a contested evasion roll.
type EvadeResult struct {
	DefenderID   string
	DefenderName string
	// Roll is the double-die "EVASION" roll.
	Roll dice.DiceRoll
	// TotalEvasion is roll total + defender movement points.
	TotalEvasion int
	// Evaded is true when TotalEvasion met or beat the incoming damage.
	Evaded bool
	// FinalDamage is the damage applied on a failed evasion; 0 on success.
	FinalDamage int
	// Distance is the movement granted on a successful evasion, consumed by
	// the external turn layer; 0 on failure.
	Distance int
	Message  string
}

// Kind returns ActionEvade.
func (r EvadeResult) Kind() ActionKind { return ActionEvade }

// DamageTaken returns FinalDamage.
func (r EvadeResult) DamageTaken() int { return r.FinalDamage }

// Narrative returns the message describing the evasion.
func (r EvadeResult) Narrative() string { return r.Message }

// AbsorbResult is the outcome of taking the hit, whether chosen explicitly
// or reached as the insufficient-stamina fallback.
type AbsorbResult struct {
	DefenderID   string
	DefenderName string
	// Damage is the full incoming damage applied to the defender.
	Damage int
	// Fallback is true when the defender wanted another response but could
	// not afford it; Message carries the reason.
	Fallback bool
	Message  string
}

// Kind returns ActionAbsorb.
func (r AbsorbResult) Kind() ActionKind { return ActionAbsorb }

// DamageTaken returns Damage.
func (r AbsorbResult) DamageTaken() int { return r.Damage }

// Narrative returns the message describing the hit.
func (r AbsorbResult) Narrative() string { return r.Message }

// ResolveDefense resolves defender's response to incoming.
//
// The Defend and Move paths require stamina (DefendCost and MoveCost); a
// defender that cannot act or cannot afford the chosen response falls back
// to the absorb path with an explanatory reason rather than failing. The
// absorb path never costs stamina and never touches the gauge, whether
// chosen explicitly or reached by fallback.
//
// Evasion is roll-contested: a successful evasion negates all damage and
// grants max(1, margin) movement distance; a failed one applies the margin
// as damage. The gauge is preserved on both evasion branches.
//
// Every path appends one log entry.
//
// Precondition: incoming must be a successful attack result.
// Postcondition: Returns the variant outcome for the path actually taken,
// or ErrNilCombatant when defender is nil (no mutation).
func (e *Engine) ResolveDefense(defender *character.Combatant, incoming AttackResult, choice DefenseChoice) (DefenseOutcome, error) {
	if defender == nil {
		return nil, ErrNilCombatant
	}

	switch choice {
	case ChoiceDefend:
		if !defender.CanAct() || defender.CurrentStamina < e.cfg.DefendCost {
			reason := fmt.Sprintf("%s cannot defend (need %d stamina, have %d)",
				defender.Name, e.cfg.DefendCost, defender.CurrentStamina)
			return e.resolveAbsorb(defender, incoming, reason), nil
		}
		return e.resolveDefend(defender, incoming), nil

	case ChoiceMove:
		if !defender.CanAct() || defender.CurrentStamina < e.cfg.MoveCost {
			reason := fmt.Sprintf("%s cannot evade (need %d stamina, have %d)",
				defender.Name, e.cfg.MoveCost, defender.CurrentStamina)
			return e.resolveAbsorb(defender, incoming, reason), nil
		}
		return e.resolveMove(defender, incoming), nil

	default:
		return e.resolveAbsorb(defender, incoming, ""), nil
	}
}

// resolveDefend handles the contested defense roll and gauge accumulation.
//
// Precondition: defender can act and has at least DefendCost stamina.
func (e *Engine) resolveDefend(defender *character.Combatant, incoming AttackResult) DefendResult {
	defender.UseStamina(e.cfg.DefendCost)
	roll := e.roller.RollDouble("DEF")
	totalDefense := roll.Total + defender.DefensePoints()

	blocked := totalDefense
	if blocked > incoming.Damage {
		blocked = incoming.Damage
	}
	finalDamage := incoming.Damage - totalDefense
	if finalDamage < 0 {
		finalDamage = 0
	}
	overDefense := totalDefense - incoming.Damage
	if overDefense < 0 {
		overDefense = 0
	}

	if overDefense > 0 {
		defender.Gauge.Add(overDefense)
	}
	if finalDamage > 0 {
		defender.TakeDamage(finalDamage)
	}

	var msg string
	switch {
	case finalDamage > 0:
		msg = fmt.Sprintf("%s blocks %d but takes %d damage (%s).", defender.Name, blocked, finalDamage, roll)
	case overDefense > 0:
		msg = fmt.Sprintf("%s blocks everything with %d to spare (%s).", defender.Name, overDefense, roll)
	default:
		msg = fmt.Sprintf("%s blocks the attack exactly (%s).", defender.Name, roll)
	}

	result := DefendResult{
		DefenderID:    defender.ID,
		DefenderName:  defender.Name,
		Roll:          roll,
		TotalDefense:  totalDefense,
		DamageBlocked: blocked,
		FinalDamage:   finalDamage,
		CounterGained: overDefense,
		CounterReady:  defender.Gauge.IsReady(),
		Message:       msg,
	}

	e.append(LogEntry{
		Action:      ActionDefend,
		ActorID:     defender.ID,
		ActorName:   defender.Name,
		TargetID:    incoming.AttackerID,
		TargetName:  incoming.AttackerName,
		Roll:        &roll,
		StaminaCost: e.cfg.DefendCost,
		Info:        msg,
	})
	e.logger.Debug("defense resolved",
		zap.String("defender", defender.Name),
		zap.Int("total_defense", totalDefense),
		zap.Int("final_damage", finalDamage),
		zap.Int("counter_gained", overDefense),
		zap.Bool("counter_ready", result.CounterReady),
	)
	return result
}

// resolveMove handles the contested evasion roll.
//
// Precondition: defender can act and has at least MoveCost stamina.
func (e *Engine) resolveMove(defender *character.Combatant, incoming AttackResult) EvadeResult {
	defender.UseStamina(e.cfg.MoveCost)
	roll := e.roller.RollDouble("EVASION")
	totalEvasion := roll.Total + defender.MovementPoints()
	diff := totalEvasion - incoming.Damage

	result := EvadeResult{
		DefenderID:   defender.ID,
		DefenderName: defender.Name,
		Roll:         roll,
		TotalEvasion: totalEvasion,
	}
	if diff >= 0 {
		result.Evaded = true
		result.Distance = diff
		if result.Distance < 1 {
			result.Distance = 1
		}
		result.Message = fmt.Sprintf("%s evades completely and may move %d (%s).", defender.Name, result.Distance, roll)
	} else {
		result.FinalDamage = -diff
		defender.TakeDamage(result.FinalDamage)
		result.Message = fmt.Sprintf("%s fails to evade and takes %d damage (%s).", defender.Name, result.FinalDamage, roll)
	}

	e.append(LogEntry{
		Action:      ActionEvade,
		ActorID:     defender.ID,
		ActorName:   defender.Name,
		TargetID:    incoming.AttackerID,
		TargetName:  incoming.AttackerName,
		Roll:        &roll,
		StaminaCost: e.cfg.MoveCost,
		Info:        result.Message,
	})
	e.logger.Debug("evasion resolved",
		zap.String("defender", defender.Name),
		zap.Int("total_evasion", totalEvasion),
		zap.Bool("evaded", result.Evaded),
		zap.Int("final_damage", result.FinalDamage),
		zap.Int("distance", result.Distance),
	)
	return result
}

// resolveAbsorb applies the full incoming damage with no stamina cost.
// The defender's gauge is never touched on this path.
func (e *Engine) resolveAbsorb(defender *character.Combatant, incoming AttackResult, fallbackReason string) AbsorbResult {
	defender.TakeDamage(incoming.Damage)

	msg := fmt.Sprintf("%s takes the full %d damage.", defender.Name, incoming.Damage)
	if fallbackReason != "" {
		msg = fmt.Sprintf("%s; %s", fallbackReason, msg)
	}

	result := AbsorbResult{
		DefenderID:   defender.ID,
		DefenderName: defender.Name,
		Damage:       incoming.Damage,
		Fallback:     fallbackReason != "",
		Message:      msg,
	}

	e.append(LogEntry{
		Action:     ActionAbsorb,
		ActorID:    defender.ID,
		ActorName:  defender.Name,
		TargetID:   incoming.AttackerID,
		TargetName: incoming.AttackerName,
		Info:       msg,
	})
	e.logger.Debug("absorb resolved",
		zap.String("defender", defender.Name),
		zap.Int("damage", incoming.Damage),
		zap.Bool("fallback", result.Fallback),
		zap.Int("health", defender.CurrentHealth),
	)
	return result
}
