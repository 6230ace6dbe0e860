// Package main provides the arena binary: a demo driver that wires config,
// logging, a dice source, and a combatant roster into one scripted duel.
//
// The turn sequencing below lives outside the engine on purpose: the engine
// exposes discrete attack/defense/counter operations and this driver is one
// possible controller for them.
package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/config"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/character"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/combat"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/dice"
	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/arena.yaml", "path to configuration file")
	rosterDir := flag.String("roster", "", "override roster directory from config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	seed := cfg.Combat.Seed
	var src dice.Source
	if seed != 0 {
		src = dice.NewSeededSource(seed)
		logger.Info("using seeded dice source", zap.Int64("seed", seed))
	} else {
		src = dice.NewCryptoSource()
		logger.Info("using crypto dice source")
	}
	roller := dice.NewRoller(src, logger)

	dir := cfg.Arena.RosterDir
	if *rosterDir != "" {
		dir = *rosterDir
	}
	defs, err := character.LoadRoster(dir)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	if len(defs) < 2 {
		logger.Fatal("roster must contain at least two combatants",
			zap.String("dir", dir), zap.Int("count", len(defs)))
	}
	logger.Info("roster loaded", zap.Int("combatants", len(defs)))

	for i := range defs {
		if defs[i].GaugeMax == 0 {
			defs[i].GaugeMax = cfg.Combat.GaugeMax
		}
	}
	left := defs[0].Build()
	right := defs[1].Build()

	engine := combat.NewEngine(combat.Config{
		AttackCost: cfg.Combat.AttackCost,
		DefendCost: cfg.Combat.DefendCost,
		MoveCost:   cfg.Combat.MoveCost,
	}, roller, logger)

	winner := runDuel(engine, left, right, cfg.Arena.MaxRounds)

	for _, entry := range engine.RecentHistory(10) {
		fmt.Printf("[%s] %s\n", entry.Action, entry.Info)
	}
	if winner != nil {
		fmt.Printf("%s wins with %d health remaining.\n", winner.Name, winner.CurrentHealth)
	} else {
		fmt.Println("The duel ends with no winner.")
	}
}

// runDuel alternates attacker and defender until one combatant drops or
// maxRounds elapse. Defenders always choose to defend; a ready gauge is
// spent on a counter-attack immediately after the defense resolves.
//
// Postcondition: Returns the surviving combatant, or nil on a round-cap draw.
func runDuel(engine *combat.Engine, left, right *character.Combatant, maxRounds int) *character.Combatant {
	attacker, defender := left, right
	for round := 1; round <= maxRounds; round++ {
		result, err := engine.ExecuteAttack(attacker, defender)
		if err != nil {
			return nil
		}
		if result.Success {
			outcome, err := engine.ResolveDefense(defender, result, combat.ChoiceDefend)
			if err != nil {
				return nil
			}
			if !defender.IsAlive() {
				return attacker
			}
			if d, ok := outcome.(combat.DefendResult); ok && d.CounterReady {
				counter, err := engine.ExecuteCounterAttack(defender, attacker)
				if err != nil {
					return nil
				}
				if counter.Success && !attacker.IsAlive() {
					return defender
				}
			}
		}
		// Exhausted combatants recover a little between exchanges so the
		// demo cannot stall before the round cap.
		attacker.RestoreStamina(1)
		defender.RestoreStamina(1)
		attacker, defender = defender, attacker
	}
	return nil
}
