package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/character"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/dice"
)

// AttackResult holds the outcome of one attack or counter-attack action.
//
// A failed result (Success == false) carries only the identities and Message;
// no state was mutated to produce it.
type AttackResult struct {
	// Success is false when the attacker could not act or lacked stamina.
	Success bool
	// AttackerID and AttackerName identify the acting combatant.
	AttackerID   string
	AttackerName string
	// TargetID and TargetName identify the defending combatant.
	TargetID   string
	TargetName string
	// Roll is the double-die roll behind a successful attack.
	Roll dice.DiceRoll
	// Damage is roll total + attacker attack points; the defender resolves it.
	Damage int
	// IsCounterAttack is true for results produced by ExecuteCounterAttack.
	IsCounterAttack bool
	// Message is the narrative line describing what happened.
	Message string
}

// Engine resolves attacks, defenses, and counter-attacks for one match.
//
// An Engine exclusively owns its Roller (and the Source behind it); sharing
// a roller across engines voids the seeded-determinism guarantee. Operations
// are synchronous and run to completion; the engine holds no state besides
// its configuration, roller, and append-only history.
type Engine struct {
	cfg     Config
	roller  *dice.Roller
	logger  *zap.Logger
	history []LogEntry
}

// NewEngine creates an Engine with the given cost configuration, dice roller,
// and logger.
//
// Precondition: cfg must pass Validate; roller and logger must be non-nil.
// Postcondition: Returns an Engine with empty history.
func NewEngine(cfg Config, roller *dice.Roller, logger *zap.Logger) *Engine {
	return &Engine{cfg: cfg, roller: roller, logger: logger}
}

// Config returns the cost configuration this engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// ExecuteAttack resolves attacker's attack against defender.
//
// Failure modes: a nil attacker or defender returns ErrNilCombatant with a
// zero result; an attacker that cannot act or lacks AttackCost stamina
// returns a failed result with an explanatory message. Neither failure
// mutates any state.
//
// On success: AttackCost stamina is deducted, a double-die "ATK" roll is
// made, Damage = roll total + attacker attack points, and a log entry is
// appended. The damage is not applied here; the defender resolves it via
// ResolveDefense.
func (e *Engine) ExecuteAttack(attacker, defender *character.Combatant) (AttackResult, error) {
	if attacker == nil || defender == nil {
		return AttackResult{}, ErrNilCombatant
	}

	if !attacker.CanAct() {
		return AttackResult{
			AttackerID:   attacker.ID,
			AttackerName: attacker.Name,
			TargetID:     defender.ID,
			TargetName:   defender.Name,
			Message:      fmt.Sprintf("%s cannot act.", attacker.Name),
		}, nil
	}
	if attacker.CurrentStamina < e.cfg.AttackCost {
		return AttackResult{
			AttackerID:   attacker.ID,
			AttackerName: attacker.Name,
			TargetID:     defender.ID,
			TargetName:   defender.Name,
			Message: fmt.Sprintf("%s is too exhausted to attack (need %d stamina, have %d).",
				attacker.Name, e.cfg.AttackCost, attacker.CurrentStamina),
		}, nil
	}

	attacker.UseStamina(e.cfg.AttackCost)
	roll := e.roller.RollDouble("ATK")
	damage := roll.Total + attacker.AttackPoints()

	result := AttackResult{
		Success:      true,
		AttackerID:   attacker.ID,
		AttackerName: attacker.Name,
		TargetID:     defender.ID,
		TargetName:   defender.Name,
		Roll:         roll,
		Damage:       damage,
		Message:      fmt.Sprintf("%s attacks %s for %d damage (%s).", attacker.Name, defender.Name, damage, roll),
	}

	e.append(LogEntry{
		Action:      ActionAttack,
		ActorID:     attacker.ID,
		ActorName:   attacker.Name,
		TargetID:    defender.ID,
		TargetName:  defender.Name,
		Roll:        &roll,
		StaminaCost: e.cfg.AttackCost,
		Info:        result.Message,
	})
	e.logger.Debug("attack resolved",
		zap.String("attacker", attacker.Name),
		zap.String("defender", defender.Name),
		zap.Int("roll_total", roll.Total),
		zap.Int("damage", damage),
	)
	return result, nil
}

// ExecuteCounterAttack resolves the bonus attack funded by a full gauge.
//
// Failure modes: nil actors return ErrNilCombatant; a gauge that is not
// ready returns a failed result with no mutation, so a second immediate
// call fails identically.
//
// On success: the gauge is consumed (reset to 0), a double-die "COUNTER"
// roll is made, and damage = roll total + attack points is applied directly
// to target, bypassing defense, at no stamina cost. The target's own gauge
// is untouched.
func (e *Engine) ExecuteCounterAttack(counterAttacker, target *character.Combatant) (AttackResult, error) {
	if counterAttacker == nil || target == nil {
		return AttackResult{}, ErrNilCombatant
	}

	if !counterAttacker.Gauge.IsReady() {
		return AttackResult{
			AttackerID:      counterAttacker.ID,
			AttackerName:    counterAttacker.Name,
			TargetID:        target.ID,
			TargetName:      target.Name,
			IsCounterAttack: true,
			Message: fmt.Sprintf("%s's counter gauge is not ready (%d/%d).",
				counterAttacker.Name, counterAttacker.Gauge.Current(), counterAttacker.Gauge.Max()),
		}, nil
	}

	counterAttacker.Gauge.Consume()
	roll := e.roller.RollDouble("COUNTER")
	damage := roll.Total + counterAttacker.AttackPoints()
	target.TakeDamage(damage)

	result := AttackResult{
		Success:         true,
		AttackerID:      counterAttacker.ID,
		AttackerName:    counterAttacker.Name,
		TargetID:        target.ID,
		TargetName:      target.Name,
		Roll:            roll,
		Damage:          damage,
		IsCounterAttack: true,
		Message: fmt.Sprintf("%s unleashes a counter-attack on %s for %d damage (%s).",
			counterAttacker.Name, target.Name, damage, roll),
	}

	e.append(LogEntry{
		Action:     ActionCounter,
		ActorID:    counterAttacker.ID,
		ActorName:  counterAttacker.Name,
		TargetID:   target.ID,
		TargetName: target.Name,
		Roll:       &roll,
		Info:       result.Message,
	})
	e.logger.Debug("counter-attack resolved",
		zap.String("attacker", counterAttacker.Name),
		zap.String("target", target.Name),
		zap.Int("damage", damage),
		zap.Int("target_health", target.CurrentHealth),
	)
	return result, nil
}
